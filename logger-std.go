//go:build !tinygo

package led

import (
	"log"
)

func init() {
	globalLogger = &stdLogger{}
}

// stdLogger writes through the standard library log package.
// Debug messages are dropped unless verbose is set.
type stdLogger struct {
	verbose bool
}

// NewStdLogger returns a Logger backed by the standard library log package.
// With verbose set it also prints a line for every pin write.
func NewStdLogger(verbose bool) Logger {
	return &stdLogger{verbose: verbose}
}

func (l *stdLogger) Debug(msg string) {
	if l.verbose {
		log.Print("[DEBUG] " + msg)
	}
}

func (l *stdLogger) Info(msg string) {
	log.Print("[INFO]  " + msg)
}

func (l *stdLogger) Warn(msg string) {
	log.Print("[WARN]  " + msg)
}

func (l *stdLogger) Error(msg string) {
	log.Print("[ERROR] " + msg)
}

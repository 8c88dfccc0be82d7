package led

// Logger receives the LED package's diagnostics: Info when a pin is configured,
// Error when the host rejects a configure or write, and Debug for every pin write.
// Messages are plain strings so TinyGo builds do not pull in fmt.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

var globalLogger Logger = &nopLogger{}

// SetLogger replaces the logger shared by every LED. A nil logger silences the package.
func SetLogger(l Logger) {
	if l == nil {
		globalLogger = &nopLogger{}
		return
	}
	globalLogger = l
}

// nopLogger drops everything; tests install it so pin writes stay quiet.
type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}

//go:build linux && !tinygo

package led

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// rpioGPIO drives pins through the Raspberry Pi GPIO registers mapped by go-rpio.
// Unlike periph, go-rpio sets the direction without touching the output latch.
type rpioGPIO struct {
	output func(rpio.Pin)
	high   func(rpio.Pin)
	low    func(rpio.Pin)
}

func newRPIOGPIO() *rpioGPIO {
	return &rpioGPIO{
		output: rpio.Pin.Output,
		high:   rpio.Pin.High,
		low:    rpio.Pin.Low,
	}
}

func (g *rpioGPIO) ConfigureOutput(pin uint8) error {
	g.output(rpio.Pin(pin))
	return nil
}

func (g *rpioGPIO) WriteLevel(pin uint8, l Level) error {
	if l == High {
		g.high(rpio.Pin(pin))
	} else {
		g.low(rpio.Pin(pin))
	}
	return nil
}

// rpioOpen is set while the GPIO memory is mapped.
var rpioOpen bool

// NewRPIO creates an LED on a Raspberry Pi using go-rpio and initializes it.
// The GPIO memory is mapped by the first call and shared by every LED created
// this way; call CloseRPIO once when done with all of them.
func NewRPIO(c Config) (*LED, error) {
	if !rpioOpen {
		if err := rpio.Open(); err != nil {
			return nil, fmt.Errorf("failed to open GPIO memory: %w", err)
		}
		rpioOpen = true
	}

	l := NewWithGPIO(c.Pin, newRPIOGPIO())
	if err := l.Init(); err != nil {
		return nil, err
	}
	return l, nil
}

// CloseRPIO unmaps the GPIO memory opened by NewRPIO.
func CloseRPIO() error {
	if !rpioOpen {
		return nil
	}
	if err := rpio.Close(); err != nil {
		globalLogger.Warn("Failed to unmap GPIO memory")
		return err
	}
	rpioOpen = false
	globalLogger.Info("GPIO memory unmapped.")
	return nil
}

//go:build tinygo

package led

import (
	"machine"
)

// tinygoGPIO drives pins through the TinyGo machine package.
// Pin numbers are machine.Pin values.
type tinygoGPIO struct{}

func (tinygoGPIO) ConfigureOutput(pin uint8) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (tinygoGPIO) WriteLevel(pin uint8, l Level) error {
	machine.Pin(pin).Set(bool(l))
	return nil
}

// NewTinyGo creates an LED on a TinyGo board and initializes it.
func NewTinyGo(pin machine.Pin) (*LED, error) {
	l := NewWithGPIO(uint8(pin), tinygoGPIO{})
	if err := l.Init(); err != nil {
		return nil, err
	}
	return l, nil
}

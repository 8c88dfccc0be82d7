//go:build !tinygo

package led

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// periphGPIO drives pins through the periph.io registry.
//
// periph has no way to make a pin an output without also driving it, so
// ConfigureOutput only resolves the pin. The direction switches on the first write.
type periphGPIO struct {
	byName func(name string) gpio.PinIO
	pins   map[uint8]gpio.PinIO
}

func newPeriphGPIO(byName func(name string) gpio.PinIO) *periphGPIO {
	return &periphGPIO{
		byName: byName,
		pins:   make(map[uint8]gpio.PinIO),
	}
}

func (g *periphGPIO) ConfigureOutput(pin uint8) error {
	_, err := g.lookup(pin)
	return err
}

func (g *periphGPIO) WriteLevel(pin uint8, l Level) error {
	p, err := g.lookup(pin)
	if err != nil {
		return err
	}
	if l == High {
		return p.Out(gpio.High)
	}
	return p.Out(gpio.Low)
}

func (g *periphGPIO) lookup(pin uint8) (gpio.PinIO, error) {
	if p, ok := g.pins[pin]; ok {
		return p, nil
	}
	name := fmt.Sprintf("GPIO%d", pin)
	p := g.byName(name)
	if p == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrPinNotFound)
	}
	g.pins[pin] = p
	return p, nil
}

// Config holds the configuration for the Linux/periph.io LED.
type Config struct {
	// Pin is the GPIO pin number (BCM numbering) the LED is wired to.
	Pin uint8
}

// New creates an LED on a Linux host using periph.io and initializes it.
//
// periph only switches a pin to output when it is driven, so after New the pin
// keeps its previous direction until the first write. Because the cached state
// starts Off, a first Set(Off) is elided and leaves the pin untouched; use
// Toggle, or Set(On) then Set(Off), to force the pin into a known output level.
func New(c Config) (*LED, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	l := NewWithGPIO(c.Pin, newPeriphGPIO(gpioreg.ByName))
	if err := l.Init(); err != nil {
		return nil, fmt.Errorf("failed to open LED pin: %w", err)
	}
	return l, nil
}

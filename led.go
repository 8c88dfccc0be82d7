package led

import (
	"errors"
	"fmt"
)

// ErrPinNotFound is returned by host adapters when a pin number does not resolve
// to a pin on the host.
var ErrPinNotFound = errors.New("pin not found")

// State is the level an LED handle commands on its pin.
type State bool

const (
	Off State = false
	On  State = true
)

func (s State) String() string {
	if s == On {
		return "on"
	}
	return "off"
}

// Level converts the state to the pin level written to the host.
func (s State) Level() Level {
	if s == On {
		return High
	}
	return Low
}

// LED drives a status LED on a single output pin.
//
// It remembers the last state it wrote so that Set can skip writes that would not
// change the pin, and so that Toggle needs no help from the caller. The handle never
// reads the pin back: if something else writes the pin, the cached state may be stale
// until the next change.
//
// An LED is not safe for concurrent use, and a pin should be owned by one handle.
type LED struct {
	pin   uint8
	host  GPIO
	state State
}

// NewWithGPIO creates a handle for pin on the given host.
// Init must be called before the first Set or Toggle.
func NewWithGPIO(pin uint8, host GPIO) *LED {
	return &LED{
		pin:   pin,
		host:  host,
		state: Off,
	}
}

// Init configures the pin as an output and resets the cached state to Off.
// It does not drive the pin; call Set afterwards for a defined starting level.
func (l *LED) Init() error {
	if err := l.host.ConfigureOutput(l.pin); err != nil {
		globalLogger.Error("Failed to configure LED pin as output")
		return err
	}
	l.state = Off
	globalLogger.Info("LED pin configured as output.")
	return nil
}

// Set drives the pin to s unless the cached state already equals s.
// On a failed write the cached state is left unchanged.
func (l *LED) Set(s State) error {
	if s == l.state {
		return nil
	}
	return l.write(s)
}

// Toggle writes the opposite of the cached state. Unlike Set it always writes.
func (l *LED) Toggle() error {
	return l.write(!l.state)
}

// On is shorthand for Set(On).
func (l *LED) On() error {
	return l.Set(On)
}

// Off is shorthand for Set(Off).
func (l *LED) Off() error {
	return l.Set(Off)
}

// Pin returns the pin the handle is bound to.
func (l *LED) Pin() uint8 {
	return l.pin
}

// State returns the cached state.
func (l *LED) State() State {
	return l.state
}

func (l *LED) String() string {
	return fmt.Sprintf("LED(Pin=%d, State=%s)", l.pin, l.state)
}

func (l *LED) write(s State) error {
	if err := l.host.WriteLevel(l.pin, s.Level()); err != nil {
		globalLogger.Error("Failed to write LED pin")
		return err
	}
	l.state = s
	globalLogger.Debug("LED " + s.String())
	return nil
}

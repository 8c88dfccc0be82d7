package led

// Level represents the logical level of a pin (Low or High).
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l == High {
		return "High"
	}
	return "Low"
}

// GPIO represents the host facility that drives output pins.
// Pins are addressed by the host's own numbering (BCM on a Raspberry Pi).
type GPIO interface {
	// ConfigureOutput makes the pin a digital output.
	// It must not drive a level.
	ConfigureOutput(pin uint8) error
	// WriteLevel drives the pin to the given level.
	WriteLevel(pin uint8, l Level) error
}

// Package status defines the result codes a program reports through its status LED.
package status

// Code is the outcome of an operation, as signalled to the user.
type Code uint8

const (
	Failure Code = iota
	OK
	Waiting
	NoChange
	NoSlots
)

func (c Code) String() string {
	switch c {
	case Failure:
		return "failure"
	case OK:
		return "ok"
	case Waiting:
		return "waiting"
	case NoChange:
		return "no change"
	case NoSlots:
		return "no slots"
	default:
		return "unknown"
	}
}

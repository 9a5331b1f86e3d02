package types

import "fmt"

// Type identifies the formula machine an executable unit targets.
type Type string

const (
	// Arith is the built-in arithmetic formula machine.
	Arith Type = "arith"

	// Invalid is returned when a machine type cannot be determined.
	Invalid Type = ""
)

func (t Type) String() string {
	return string(t)
}

// Parse converts a string into a known machine Type.
func Parse(s string) (Type, error) {
	switch Type(s) {
	case Arith:
		return Arith, nil
	default:
		return Invalid, fmt.Errorf("unsupported machine type: %q", s)
	}
}

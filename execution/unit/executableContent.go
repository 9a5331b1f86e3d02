package unit

import (
	machineTypes "github.com/robbyt/go-formula/machines/types"
)

// ExecutableContent represents a validated formula that is ready for
// evaluation. It provides access to the source text, the parsed
// program, and the component ids the formula depends on.
type ExecutableContent interface {
	// GetSource returns the original formula text.
	GetSource() string

	// GetByteCode returns the parsed program in a machine-specific
	// format. The target machine asserts it back to its concrete type;
	// MachineType and ByteCode must stay compatible.
	GetByteCode() any

	// GetMachineType returns the machine type this formula is intended to run on.
	GetMachineType() machineTypes.Type

	// GetComponents returns the distinct component ids the formula
	// references, in first-occurrence order. Callers use it to know
	// which readings an evaluation will need.
	GetComponents() []int64
}

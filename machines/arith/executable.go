package arith

import (
	machineTypes "github.com/robbyt/go-formula/machines/types"
)

// Executable pairs a parsed formula with its source text, implementing
// unit.ExecutableContent.
type Executable struct {
	source string
	prog   *Program
}

func newExecutable(source string, prog *Program) *Executable {
	if source == "" || prog == nil {
		return nil
	}
	return &Executable{
		source: source,
		prog:   prog,
	}
}

func (e *Executable) GetSource() string {
	return e.source
}

// GetByteCode returns the parsed program as an untyped value.
func (e *Executable) GetByteCode() any {
	return e.prog
}

// GetProgram returns the parsed program with its concrete type.
func (e *Executable) GetProgram() *Program {
	return e.prog
}

func (e *Executable) GetMachineType() machineTypes.Type {
	return machineTypes.Arith
}

// GetComponents returns the component ids the formula references, in
// first-occurrence order.
func (e *Executable) GetComponents() []int64 {
	return e.prog.Components()
}

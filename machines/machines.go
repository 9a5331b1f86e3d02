// Package machines dispatches on the machine type to create the
// matching compiler and evaluator instances.
package machines

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-formula/engine"
	"github.com/robbyt/go-formula/execution/unit"
	"github.com/robbyt/go-formula/machines/arith"
	"github.com/robbyt/go-formula/machines/types"
)

// NewCompiler creates a compiler for the given machine type.
// compilerOptions is machine-specific; the arith machine accepts a
// []arith.CompilerOption (or nil for defaults).
func NewCompiler(
	handler slog.Handler,
	machineType types.Type,
	compilerOptions any,
) (unit.Compiler, error) {
	switch machineType {
	case types.Arith:
		var opts []arith.CompilerOption
		switch co := compilerOptions.(type) {
		case nil:
		case []arith.CompilerOption:
			opts = co
		case arith.CompilerOption:
			opts = []arith.CompilerOption{co}
		default:
			return nil, fmt.Errorf(
				"invalid compiler options for arith machine: %T", compilerOptions)
		}
		return arith.NewCompiler(handler, opts...), nil
	default:
		return nil, fmt.Errorf("unsupported machine type: %s", machineType)
	}
}

// NewEvaluator creates an evaluator for the machine type the
// executable unit was compiled for.
func NewEvaluator(
	handler slog.Handler,
	execUnit *unit.ExecutableUnit,
) (engine.EvaluatorWithPrep, error) {
	if execUnit == nil {
		return nil, fmt.Errorf("executable unit is nil")
	}

	switch execUnit.GetMachineType() {
	case types.Arith:
		return arith.NewBytecodeEvaluator(handler, execUnit), nil
	default:
		return nil, fmt.Errorf("unsupported machine type: %s", execUnit.GetMachineType())
	}
}

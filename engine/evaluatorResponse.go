package engine

import "github.com/robbyt/go-formula/execution/data"

// EvaluatorResponse is the result wrapper returned by every machine.
type EvaluatorResponse interface {
	// Type of the object.
	Type() data.Types

	// Inspect returns a string representation of the given object.
	Inspect() string

	// Interface converts the given object to a native Go value.
	Interface() any

	// GetFormulaExeID returns the ID of the formula that generated the object.
	GetFormulaExeID() string

	// GetExecTime returns the time it took to evaluate the formula.
	GetExecTime() string
}

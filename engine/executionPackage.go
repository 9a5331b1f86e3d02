package engine

import (
	"fmt"
	"time"

	"github.com/robbyt/go-formula/execution/unit"
)

type ExecutionPackage interface {
	// GetEvaluator returns the evaluator for this formula
	GetEvaluator() Evaluator

	// GetExecutableUnit returns the executable unit for this formula
	GetExecutableUnit() *unit.ExecutableUnit

	// GetEvalTimeout returns the timeout for this formula
	GetEvalTimeout() time.Duration
}

// executionPackage is the concrete implementation of ExecutionPackage
type executionPackage struct {
	evaluator   Evaluator
	unit        *unit.ExecutableUnit
	evalTimeout time.Duration
}

// NewExecutionPackage bundles an evaluator with its executable unit and
// an evaluation timeout, so schedulers can treat the three as one handle.
func NewExecutionPackage(
	evaluator Evaluator,
	execUnit *unit.ExecutableUnit,
	evalTimeout time.Duration,
) *executionPackage {
	return &executionPackage{
		evaluator:   evaluator,
		unit:        execUnit,
		evalTimeout: evalTimeout,
	}
}

func (p *executionPackage) String() string {
	return fmt.Sprintf(
		"engine.ExecutionPackage{Evaluator: %s, ExecutableUnit: %s}",
		p.evaluator,
		p.unit,
	)
}

// GetEvaluator returns an evaluator that can run the associated executable unit
func (p *executionPackage) GetEvaluator() Evaluator {
	return p.evaluator
}

// GetExecutableUnit returns an executable unit (parsed program, source)
func (p *executionPackage) GetExecutableUnit() *unit.ExecutableUnit {
	return p.unit
}

// GetEvalTimeout returns the timeout for this formula
func (p *executionPackage) GetEvalTimeout() time.Duration {
	return p.evalTimeout
}

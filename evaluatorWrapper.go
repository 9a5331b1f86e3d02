package formula

import (
	"context"
	"fmt"

	"github.com/robbyt/go-formula/engine"
	"github.com/robbyt/go-formula/execution/unit"
)

// EvaluatorWrapper wraps a machine-specific evaluator and stores the
// ExecutableUnit. This allows callers to follow the "compile once,
// evaluate many times" pattern. It implements both the Evaluator and
// EvalDataPreparer interfaces.
type EvaluatorWrapper struct {
	delegate engine.Evaluator
	execUnit *unit.ExecutableUnit
}

// NewEvaluatorWrapper creates a new evaluator wrapper
func NewEvaluatorWrapper(
	delegateEvaluator engine.Evaluator,
	execUnit *unit.ExecutableUnit,
) engine.EvaluatorWithPrep {
	return &EvaluatorWrapper{
		delegate: delegateEvaluator,
		execUnit: execUnit,
	}
}

// Eval implements the engine.Evaluator interface by delegating to the
// wrapped evaluator, which holds the stored ExecutableUnit.
func (e *EvaluatorWrapper) Eval(ctx context.Context) (engine.EvaluatorResponse, error) {
	return e.delegate.Eval(ctx)
}

// PrepareContext implements the engine.EvalDataPreparer interface by
// enriching the context with evaluation data. It delegates to the
// wrapped evaluator if it implements EvalDataPreparer, otherwise it
// uses the ExecutableUnit's DataProvider directly.
func (e *EvaluatorWrapper) PrepareContext(
	ctx context.Context,
	d ...any,
) (context.Context, error) {
	if preparer, ok := e.delegate.(engine.EvalDataPreparer); ok {
		return preparer.PrepareContext(ctx, d...)
	}

	// Fallback implementation using the executable unit's data provider
	if e.execUnit == nil || e.execUnit.GetDataProvider() == nil {
		return ctx, fmt.Errorf("no data provider available")
	}

	return e.execUnit.GetDataProvider().AddDataToContext(ctx, d...)
}

// GetExecutableUnit returns the stored ExecutableUnit. Useful for
// examining the compiled formula, e.g. its component ids.
func (e *EvaluatorWrapper) GetExecutableUnit() *unit.ExecutableUnit {
	return e.execUnit
}

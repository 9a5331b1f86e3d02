package engine

import (
	"context"
)

// Evaluator is the interface for the generic formula evaluator. The
// compiled formula and its data provider travel inside the
// implementation; the context carries cancellation and any per-call
// readings stored by PrepareContext.
type Evaluator interface {
	// Eval evaluates the pre-compiled formula and returns the response.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

package engine

import (
	"context"
)

// EvalDataPreparer prepares data for formula evaluation by enriching a
// context. This interface supports separating data preparation from
// evaluation, so the two steps can happen at different times or on
// different systems.
type EvalDataPreparer interface {
	// PrepareContext enriches a context with data for formula
	// evaluation. Reading maps (map[int64]float64) and general data
	// maps are converted as the machine implementation requires and
	// stored using the ExecutableUnit's DataProvider.
	//
	// Example:
	//
	//	readings := map[int64]float64{2: 3.5}
	//	enrichedCtx, err := evaluator.PrepareContext(ctx, readings)
	//	if err != nil {
	//	    return err
	//	}
	//	result, err := evaluator.Eval(enrichedCtx)
	PrepareContext(ctx context.Context, data ...any) (context.Context, error)
}

// EvaluatorWithPrep combines the Evaluator and EvalDataPreparer
// interfaces, providing a unified API for data preparation and formula
// evaluation. It allows these steps to be performed separately while
// maintaining their logical connection.
type EvaluatorWithPrep interface {
	Evaluator
	EvalDataPreparer
}

// Description: This file contains constants used for accessing values from context objects.
package constants

// ContextKey is the typed key used to store evaluation data in a
// context.Context, avoiding collisions with other packages' keys.
type ContextKey string

const (
	// EvalData is the context key the data providers store under; load with ctx.Value()
	EvalData ContextKey = "eval_data"

	// Readings is the key inside the eval data map holding the component reading map
	Readings = "readings"
)

package data

import (
	"context"
)

// Provider supplies evaluation data to a formula machine and accepts
// new data for later evaluations. Implementations decide where the
// data lives (a static map, the context, a chain of other providers).
type Provider interface {
	// GetData retrieves the data map from the given context. Component
	// readings, when present, are stored under constants.Readings.
	GetData(ctx context.Context) (map[string]any, error)

	// AddDataToContext stores data for later retrieval by GetData and
	// returns the enriched context. Implementations define which input
	// types they accept.
	AddDataToContext(ctx context.Context, d ...any) (context.Context, error)
}

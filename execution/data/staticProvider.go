package data

import (
	"context"
	"errors"
	"maps"

	"github.com/robbyt/go-formula/execution/constants"
)

// ErrStaticProviderNoRuntimeUpdates is returned by AddDataToContext on
// a StaticProvider; its data is fixed at creation time.
var ErrStaticProviderNoRuntimeUpdates = errors.New(
	"StaticProvider doesn't support adding data at runtime")

// StaticProvider is a simple provider that returns a predefined map of
// data. It's useful for testing and for cases where the input data is
// known in advance, such as fixed component readings.
type StaticProvider struct {
	data map[string]any
}

// NewStaticProvider creates a new StaticProvider with the provided data map
func NewStaticProvider(data map[string]any) *StaticProvider {
	if data == nil {
		data = make(map[string]any)
	}
	return &StaticProvider{
		data: data,
	}
}

// NewStaticReadings creates a StaticProvider holding only a component
// reading map, stored under the key the formula machine reads from.
func NewStaticReadings(readings map[int64]float64) *StaticProvider {
	return NewStaticProvider(map[string]any{
		constants.Readings: maps.Clone(readings),
	})
}

// GetData returns the static data map regardless of the context. A
// clone is returned so callers cannot modify the original.
func (p *StaticProvider) GetData(ctx context.Context) (map[string]any, error) {
	return maps.Clone(p.data), nil
}

// AddDataToContext always fails; static data cannot change after
// creation. The context is returned unchanged.
func (p *StaticProvider) AddDataToContext(
	ctx context.Context,
	d ...any,
) (context.Context, error) {
	return ctx, ErrStaticProviderNoRuntimeUpdates
}

func (p *StaticProvider) String() string {
	return "data.StaticProvider"
}

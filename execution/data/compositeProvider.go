package data

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/robbyt/go-formula/execution/constants"
)

// CompositeProvider combines multiple providers and merges their
// results. Later providers in the chain override values from earlier
// providers, except component reading maps, which merge per-id so each
// provider can contribute readings. The usual pairing is a
// StaticProvider for fixed readings plus a ContextProvider for
// per-call updates.
type CompositeProvider struct {
	// providers is the ordered list of providers to query
	providers []Provider
}

// NewCompositeProvider creates a new CompositeProvider with the given providers.
// The providers will be queried in the order they are provided.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{
		providers: providers,
	}
}

// GetData calls each provider in sequence and merges the results.
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	result := make(map[string]any)

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		d, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}

		mergeEvalData(result, d)
	}

	return result, nil
}

// AddDataToContext forwards the data to each provider in the chain.
// StaticProviders always reject updates, so their refusals only count
// when the chain has no updatable provider at all; otherwise one
// successful provider is enough.
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	d ...any,
) (context.Context, error) {
	finalCtx := ctx

	var errz []error
	var staticErrz []error
	updatable := 0
	succeeded := 0

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		nextCtx, err := provider.AddDataToContext(finalCtx, d...)
		if err != nil {
			if errors.Is(err, ErrStaticProviderNoRuntimeUpdates) {
				staticErrz = append(staticErrz, fmt.Errorf("error from provider %d: %w", i, err))
				continue
			}
			updatable++
			errz = append(errz, fmt.Errorf("error from provider %d: %w", i, err))
			continue
		}

		updatable++
		succeeded++
		finalCtx = nextCtx
	}

	// Only static refusals means the chain cannot accept runtime data.
	if updatable == 0 && len(staticErrz) > 0 {
		return ctx, errors.Join(staticErrz...)
	}

	if updatable > 0 && succeeded == 0 {
		return ctx, errors.Join(errz...)
	}

	return finalCtx, nil
}

func (p *CompositeProvider) String() string {
	return fmt.Sprintf("data.CompositeProvider{Providers: %d}", len(p.providers))
}

// mergeEvalData copies src into dst. Later values win, except reading
// maps under constants.Readings, which merge per-id. Merged reading
// maps are rebuilt rather than mutated so provider-owned maps are
// never written through.
func mergeEvalData(dst, src map[string]any) {
	for key, val := range src {
		if key == constants.Readings {
			srcReadings, srcOK := val.(map[int64]float64)
			dstReadings, dstOK := dst[key].(map[int64]float64)
			if srcOK && dstOK {
				merged := make(map[int64]float64, len(dstReadings)+len(srcReadings))
				maps.Copy(merged, dstReadings)
				maps.Copy(merged, srcReadings)
				dst[key] = merged
				continue
			}
		}
		dst[key] = val
	}
}

package data

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/robbyt/go-formula/execution/constants"
)

// ContextProvider retrieves and stores evaluation data in the context
// using a specified key. It is the provider to use when readings change
// per call: enrich the context before each evaluation and pass the
// enriched context to Eval.
type ContextProvider struct {
	contextKey constants.ContextKey
}

// NewContextProvider creates a new ContextProvider with the given context key.
func NewContextProvider(contextKey constants.ContextKey) *ContextProvider {
	return &ContextProvider{
		contextKey: contextKey,
	}
}

// GetData extracts a map[string]any from the context using the configured key.
func (p *ContextProvider) GetData(ctx context.Context) (map[string]any, error) {
	if p.contextKey == "" {
		return nil, fmt.Errorf("context key is empty")
	}

	value := ctx.Value(p.contextKey)
	if value == nil {
		return make(map[string]any), nil
	}

	inputData, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid input data type: expected map[string]any, got %T", value)
	}

	return inputData, nil
}

// AddDataToContext stores data in the context for formula evaluation.
// Accepted item types:
//
//   - map[int64]float64, map[int]float64: component readings, merged
//     per-id under constants.Readings
//   - map[string]any: general evaluation data, merged top-level; a
//     constants.Readings entry holding a reading map merges per-id
//     instead of replacing
//   - nil: skipped
//
// Data already stored under the key is carried forward, so repeated
// calls accumulate; new readings merge per-id with earlier ones.
// Unsupported types are reported with errors.Join, but every accepted
// item is still stored, so the returned context is usable even when an
// error is returned.
//
// Example:
//
//	provider := NewContextProvider(constants.EvalData)
//	ctx, err := provider.AddDataToContext(ctx, map[int64]float64{2: 3.5})
func (p *ContextProvider) AddDataToContext(
	ctx context.Context,
	d ...any,
) (context.Context, error) {
	if p.contextKey == "" {
		return ctx, fmt.Errorf("context key is empty")
	}

	// Collect errors during processing
	var errz []error

	// Initialize the data storage map
	toStore := make(map[string]any)

	// Carry forward data already stored under the key, so successive
	// preparation calls accumulate. The reading map is cloned rather
	// than aliased; contexts created earlier keep their own snapshot.
	if existing := ctx.Value(p.contextKey); existing != nil {
		if existingMap, ok := existing.(map[string]any); ok {
			maps.Copy(toStore, existingMap)
			if readings, ok := toStore[constants.Readings].(map[int64]float64); ok {
				toStore[constants.Readings] = maps.Clone(readings)
			}
		}
	}

	for _, item := range d {
		if item == nil {
			continue
		}

		switch v := item.(type) {
		case map[int64]float64:
			mergeReadings(toStore, v)

		case map[int]float64:
			conv := make(map[int64]float64, len(v))
			for id, val := range v {
				conv[int64(id)] = val
			}
			mergeReadings(toStore, conv)

		case map[string]any:
			for key, val := range v {
				if key == constants.Readings {
					switch rv := val.(type) {
					case map[int64]float64:
						mergeReadings(toStore, rv)
						continue
					case map[int]float64:
						conv := make(map[int64]float64, len(rv))
						for id, rval := range rv {
							conv[int64(id)] = rval
						}
						mergeReadings(toStore, conv)
						continue
					}
					// Other reading shapes are stored as-is; the machine
					// converters validate them at evaluation time.
				}
				toStore[key] = val
			}

		default:
			errz = append(errz, fmt.Errorf("unsupported data type for ContextProvider: %T", item))
			continue
		}
	}

	// Always create a new context with whatever data we were able to
	// process; errors.Join returns nil when errz is empty.
	newCtx := context.WithValue(ctx, p.contextKey, toStore)
	return newCtx, errors.Join(errz...)
}

// mergeReadings merges src into the reading map stored under
// constants.Readings, creating it when absent.
func mergeReadings(toStore map[string]any, src map[int64]float64) {
	readings, ok := toStore[constants.Readings].(map[int64]float64)
	if !ok {
		readings = make(map[int64]float64, len(src))
		toStore[constants.Readings] = readings
	}
	maps.Copy(readings, src)
}

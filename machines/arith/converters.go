package arith

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/robbyt/go-formula/execution/constants"
)

// extractReadings pulls the component reading map out of provider data.
// Providers store readings under constants.Readings; the shapes
// different callers produce (typed maps, JSON-decoded string keys) are
// normalized here into the map Program.Evaluate expects.
func extractReadings(inputData map[string]any) (map[int64]float64, error) {
	readings := make(map[int64]float64)
	if inputData == nil {
		return readings, nil
	}

	raw, ok := inputData[constants.Readings]
	if !ok || raw == nil {
		return readings, nil
	}

	switch m := raw.(type) {
	case map[int64]float64:
		maps.Copy(readings, m)

	case map[int]float64:
		for id, v := range m {
			readings[int64(id)] = v
		}

	case map[int64]any:
		for id, v := range m {
			f, err := toFloat(v)
			if err != nil {
				return nil, fmt.Errorf("component #%d: %w", id, err)
			}
			readings[id] = f
		}

	case map[string]float64:
		for key, v := range m {
			id, err := parseComponentID(key)
			if err != nil {
				return nil, err
			}
			readings[id] = v
		}

	case map[string]any:
		for key, v := range m {
			id, err := parseComponentID(key)
			if err != nil {
				return nil, err
			}
			f, err := toFloat(v)
			if err != nil {
				return nil, fmt.Errorf("component #%d: %w", id, err)
			}
			readings[id] = f
		}

	default:
		return nil, fmt.Errorf("unsupported readings type: %T", raw)
	}

	return readings, nil
}

// parseComponentID converts a string key into a component id. A
// leading '#' is tolerated so keys can mirror the formula syntax.
func parseComponentID(key string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(key, "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid component id %q: %w", key, err)
	}
	return id, nil
}

func toFloat(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("unsupported reading value type: %T", v)
	}
}

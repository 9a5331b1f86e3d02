package data

import (
	"context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/robbyt/go-formula/execution/constants"
)

// Standard test data sets used across all provider tests
var (
	// Simple data for testing basic functionality
	simpleData = map[string]any{
		"source":  "grid-meter",
		"tick":    42,
		"enabled": true,
	}

	// Evaluation data with component readings, the shape formula
	// machines consume
	readingsData = map[string]any{
		constants.Readings: map[int64]float64{1: 120.5, 2: 98.0},
	}
)

// MockProvider is a testify mock implementation of Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetData(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).(map[string]any)
	return data, args.Error(1)
}

func (m *MockProvider) AddDataToContext(ctx context.Context, d ...any) (context.Context, error) {
	args := m.Called(append([]any{ctx}, d...))
	newCtx, _ := args.Get(0).(context.Context)
	return newCtx, args.Error(1)
}

// newMockErrorProvider creates a mock provider that returns errors
func newMockErrorProvider() *MockProvider {
	provider := new(MockProvider)
	provider.On("GetData", mock.Anything).Return(nil, assert.AnError)
	provider.On("AddDataToContext", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)
	return provider
}

package mocks

import (
	"context"

	"github.com/robbyt/go-formula/engine"
	"github.com/robbyt/go-formula/execution/data"
	"github.com/stretchr/testify/mock"
)

// Evaluator is a mock implementation of engine.EvaluatorWithPrep for testing purposes.
type Evaluator struct {
	mock.Mock
}

// Eval is a mock implementation of the Eval method.
func (m *Evaluator) Eval(ctx context.Context) (engine.EvaluatorResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(engine.EvaluatorResponse), args.Error(1)
}

// PrepareContext is a mock implementation of the PrepareContext method.
func (m *Evaluator) PrepareContext(ctx context.Context, d ...any) (context.Context, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(context.Context), args.Error(1)
}

// EvaluatorResponse is a mock implementation of engine.EvaluatorResponse.
type EvaluatorResponse struct {
	mock.Mock
}

func (m *EvaluatorResponse) Type() data.Types {
	args := m.Called()
	return args.Get(0).(data.Types)
}

func (m *EvaluatorResponse) Inspect() string {
	args := m.Called()
	return args.String(0)
}

func (m *EvaluatorResponse) Interface() any {
	args := m.Called()
	return args.Get(0)
}

func (m *EvaluatorResponse) GetFormulaExeID() string {
	args := m.Called()
	return args.String(0)
}

func (m *EvaluatorResponse) GetExecTime() string {
	args := m.Called()
	return args.String(0)
}

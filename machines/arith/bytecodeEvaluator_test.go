package arith

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-formula/execution/constants"
	"github.com/robbyt/go-formula/execution/data"
	"github.com/robbyt/go-formula/execution/unit"
	"github.com/robbyt/go-formula/execution/unit/loader"
)

// evalBuilder compiles a formula into an executable unit backed by a
// context provider and wraps it in a BytecodeEvaluator.
func evalBuilder(t *testing.T, formula string) (*unit.ExecutableUnit, *BytecodeEvaluator) {
	t.Helper()

	fromString, err := loader.NewFromString(formula)
	require.NoError(t, err, "Failed to create new loader")

	handler := slog.NewTextHandler(os.Stdout, nil)

	exe, err := unit.NewExecutableUnit(
		handler,
		"",
		fromString,
		NewCompiler(handler),
		data.NewContextProvider(constants.EvalData),
		nil,
	)
	require.NoError(t, err, "Failed to create new executable unit")

	evaluator := NewBytecodeEvaluator(handler, exe)
	require.NotNil(t, evaluator, "BytecodeEvaluator should not be nil")

	return exe, evaluator
}

// readingsCtx stores one set of component readings in a fresh context,
// the shape the context provider expects.
func readingsCtx(readings map[int64]float64) context.Context {
	evalData := map[string]any{constants.Readings: readings}
	return context.WithValue(context.Background(), constants.EvalData, evalData)
}

func TestEvalFormulas(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		formula  string
		readings map[int64]float64
		expected float64
		inspect  string
	}{
		{
			name:     "constant arithmetic",
			formula:  "2 + 3 * 4",
			readings: nil,
			expected: 14,
			inspect:  "14",
		},
		{
			name:     "component readings",
			formula:  "#1 + #2 * #1",
			readings: map[int64]float64{1: 2, 2: 5},
			expected: 12,
			inspect:  "12",
		},
		{
			name:     "weighted sum",
			formula:  "#1 + #2 + #8 * 0.25",
			readings: map[int64]float64{1: 120.5, 2: 98.0, 8: 400.0},
			expected: 318.5,
			inspect:  "318.5",
		},
		{
			name:     "coalesce fallback",
			formula:  "COALESCE(#4, #2 + #3)",
			readings: map[int64]float64{2: 100, 3: 200},
			expected: 300,
			inspect:  "300",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			exe, evaluator := evalBuilder(t, tt.formula)

			response, err := evaluator.Eval(readingsCtx(tt.readings))
			require.NoError(t, err, "Did not expect an error but got one")
			require.NotNil(t, response, "Response should not be nil")

			assert.Equal(t, data.FLOAT, response.Type())
			assert.Equal(t, tt.inspect, response.Inspect())

			value, ok := response.Interface().(float64)
			require.True(t, ok, "Expected response value to be a float64")
			assert.InDelta(t, tt.expected, value, 1e-9)

			assert.Equal(t, exe.GetID(), response.GetFormulaExeID())
			assert.NotEmpty(t, response.GetExecTime())
		})
	}
}

func TestEvalErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing component", func(t *testing.T) {
		t.Parallel()

		_, evaluator := evalBuilder(t, "#1 + #2")

		response, err := evaluator.Eval(readingsCtx(map[int64]float64{1: 3}))
		require.Error(t, err)
		require.Nil(t, response)
		require.ErrorIs(t, err, ErrExecutionFailed)

		var missing *MissingComponentError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, int64(2), missing.ID)
	})

	t.Run("division by zero", func(t *testing.T) {
		t.Parallel()

		_, evaluator := evalBuilder(t, "#1 / #2")

		response, err := evaluator.Eval(readingsCtx(map[int64]float64{1: 4, 2: 0}))
		require.Error(t, err)
		require.Nil(t, response)
		require.ErrorIs(t, err, ErrExecutionFailed)
		require.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("no readings in context", func(t *testing.T) {
		t.Parallel()

		_, evaluator := evalBuilder(t, "#1 + 1")

		_, err := evaluator.Eval(context.Background())
		require.Error(t, err)

		var missing *MissingComponentError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, int64(1), missing.ID)
	})

	t.Run("malformed readings in context", func(t *testing.T) {
		t.Parallel()

		_, evaluator := evalBuilder(t, "#1 + 1")

		evalData := map[string]any{constants.Readings: []float64{1, 2}}
		ctx := context.WithValue(context.Background(), constants.EvalData, evalData)

		_, err := evaluator.Eval(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to convert input data")
	})
}

func TestEvalGuards(t *testing.T) {
	t.Parallel()
	handler := slog.NewTextHandler(os.Stdout, nil)

	t.Run("nil executable unit", func(t *testing.T) {
		t.Parallel()

		evaluator := NewBytecodeEvaluator(handler, nil)
		_, err := evaluator.Eval(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "executable unit is nil")
	})

	t.Run("nil content", func(t *testing.T) {
		t.Parallel()

		evaluator := NewBytecodeEvaluator(handler, &unit.ExecutableUnit{ID: "test-id"})
		_, err := evaluator.Eval(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content is nil")
	})

	t.Run("nil bytecode", func(t *testing.T) {
		t.Parallel()

		content := &unit.MockExecutableContent{}
		content.On("GetByteCode").Return(nil)

		evaluator := NewBytecodeEvaluator(handler, &unit.ExecutableUnit{
			ID:      "test-id",
			Content: content,
		})
		_, err := evaluator.Eval(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bytecode is nil")
	})

	t.Run("wrong bytecode type", func(t *testing.T) {
		t.Parallel()

		content := &unit.MockExecutableContent{}
		content.On("GetByteCode").Return("not a program")

		evaluator := NewBytecodeEvaluator(handler, &unit.ExecutableUnit{
			ID:      "test-id",
			Content: content,
		})
		_, err := evaluator.Eval(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid bytecode type")
	})

	t.Run("empty execution ID", func(t *testing.T) {
		t.Parallel()

		prog, err := Parse("1 + 1")
		require.NoError(t, err)

		content := &unit.MockExecutableContent{}
		content.On("GetByteCode").Return(prog)

		evaluator := NewBytecodeEvaluator(handler, &unit.ExecutableUnit{Content: content})
		_, err = evaluator.Eval(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "execution ID is empty")
	})
}

func TestEvalWithStaticReadings(t *testing.T) {
	t.Parallel()
	handler := slog.NewTextHandler(os.Stdout, nil)

	newUnit := func(t *testing.T, formula string, sReadings map[int64]float64, provider data.Provider) *unit.ExecutableUnit {
		t.Helper()
		fromString, err := loader.NewFromString(formula)
		require.NoError(t, err)

		exe, err := unit.NewExecutableUnit(
			handler, "", fromString, NewCompiler(handler), provider, sReadings)
		require.NoError(t, err)
		return exe
	}

	t.Run("static readings only", func(t *testing.T) {
		t.Parallel()

		exe := newUnit(t, "#1 * 2", map[int64]float64{1: 21}, nil)
		evaluator := NewBytecodeEvaluator(handler, exe)

		response, err := evaluator.Eval(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "42", response.Inspect())
	})

	t.Run("runtime readings override static readings", func(t *testing.T) {
		t.Parallel()

		exe := newUnit(
			t, "#1 + #2",
			map[int64]float64{1: 10, 2: 1},
			data.NewContextProvider(constants.EvalData),
		)
		evaluator := NewBytecodeEvaluator(handler, exe)

		// Component 2 is overridden at runtime, component 1 keeps its
		// static value.
		response, err := evaluator.Eval(readingsCtx(map[int64]float64{2: 5}))
		require.NoError(t, err)
		assert.Equal(t, "15", response.Inspect())
	})
}

func TestBytecodeEvaluatorPrepareContext(t *testing.T) {
	t.Parallel()
	handler := slog.NewTextHandler(os.Stdout, nil)

	t.Run("adds readings through the context provider", func(t *testing.T) {
		t.Parallel()

		_, evaluator := evalBuilder(t, "#2 + 1")

		ctx, err := evaluator.PrepareContext(
			context.Background(), map[int64]float64{2: 3})
		require.NoError(t, err)

		response, err := evaluator.Eval(ctx)
		require.NoError(t, err)
		assert.Equal(t, "4", response.Inspect())
	})

	t.Run("nil executable unit", func(t *testing.T) {
		t.Parallel()

		evaluator := NewBytecodeEvaluator(handler, nil)
		ctx, err := evaluator.PrepareContext(context.Background(), map[int64]float64{1: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no data provider available")
		assert.NotNil(t, ctx, "the original context comes back even on error")
	})

	t.Run("static provider rejects runtime updates", func(t *testing.T) {
		t.Parallel()

		fromString, err := loader.NewFromString("#1 + 1")
		require.NoError(t, err)

		exe, err := unit.NewExecutableUnit(
			handler, "", fromString, NewCompiler(handler), nil,
			map[int64]float64{1: 1})
		require.NoError(t, err)

		evaluator := NewBytecodeEvaluator(handler, exe)
		_, err = evaluator.PrepareContext(context.Background(), map[int64]float64{1: 2})
		require.ErrorIs(t, err, data.ErrStaticProviderNoRuntimeUpdates)
	})
}

func TestBytecodeEvaluatorString(t *testing.T) {
	t.Parallel()

	evaluator := NewBytecodeEvaluator(slog.NewTextHandler(os.Stdout, nil), nil)
	assert.Equal(t, "arith.BytecodeEvaluator", evaluator.String())
}

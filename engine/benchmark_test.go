// Package engine_test contains benchmarks for go-formula.
//
// The benchmarks compare different usage patterns and configurations:
//
// 1. Evaluation Patterns:
//   - SingleExecution: Creates a new evaluator for each execution (slower)
//   - CompileOnceRunMany: Reuses a compiled evaluator (faster)
//
// 2. Data Providers:
//   - StaticProvider: Fixed readings provided at creation time
//   - ContextProvider: Readings retrieved from context at runtime
//   - CompositeProvider: Combines multiple providers
//
// 3. Formula Complexity:
//   - Plain arithmetic vs nested function calls
package engine_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	formula "github.com/robbyt/go-formula"
	"github.com/robbyt/go-formula/execution/constants"
	"github.com/robbyt/go-formula/execution/data"
	"github.com/robbyt/go-formula/options"
)

// quietHandler is a slog.Handler that discards all logs
var quietHandler = slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})

// BenchmarkEvaluationPatterns compares different evaluation patterns:
// - Single execution (compile and run once)
// - Compile once, run many times
func BenchmarkEvaluationPatterns(b *testing.B) {
	// Simple formula for benchmarking
	formulaContent := "#1 + #2 * #1"

	b.Run("SingleExecution", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			// Create readings
			readings := map[int64]float64{1: 2, 2: 5}
			dataProvider := data.NewStaticReadings(readings)

			// Create and evaluate in each iteration (simulating one-time use)
			evaluator, err := formula.FromString(
				formulaContent,
				options.WithDefaults(),
				options.WithDataProvider(dataProvider),
				options.WithLogger(quietHandler),
			)
			if err != nil {
				b.Fatalf("Failed to create evaluator: %v", err)
			}

			// Evaluate the formula
			_, err = evaluator.Eval(context.Background())
			if err != nil {
				b.Fatalf("Failed to evaluate formula: %v", err)
			}
		}
	})

	b.Run("CompileOnceRunMany", func(b *testing.B) {
		// Create evaluator once, outside the loop
		dataProvider := data.NewStaticReadings(map[int64]float64{1: 2, 2: 5})
		evaluator, err := formula.FromString(
			formulaContent,
			options.WithDefaults(),
			options.WithDataProvider(dataProvider),
			options.WithLogger(quietHandler),
		)
		if err != nil {
			b.Fatalf("Failed to create evaluator: %v", err)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			// Just run evaluation in the loop
			_, err = evaluator.Eval(context.Background())
			if err != nil {
				b.Fatalf("Failed to evaluate formula: %v", err)
			}
		}
	})
}

// BenchmarkDataProviders compares different data provider types:
// - StaticProvider
// - ContextProvider
// - CompositeProvider
func BenchmarkDataProviders(b *testing.B) {
	// Simple formula for benchmarking
	formulaContent := "#1 + #2 * #1"

	readings := map[int64]float64{1: 2, 2: 5}

	b.Run("StaticProvider", func(b *testing.B) {
		dataProvider := data.NewStaticReadings(readings)
		evaluator, err := formula.FromString(
			formulaContent,
			options.WithDefaults(),
			options.WithDataProvider(dataProvider),
			options.WithLogger(quietHandler),
		)
		if err != nil {
			b.Fatalf("Failed to create evaluator: %v", err)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, err = evaluator.Eval(context.Background())
			if err != nil {
				b.Fatalf("Failed to evaluate formula: %v", err)
			}
		}
	})

	b.Run("ContextProvider", func(b *testing.B) {
		dataProvider := data.NewContextProvider(constants.EvalData)
		evaluator, err := formula.FromString(
			formulaContent,
			options.WithDefaults(),
			options.WithDataProvider(dataProvider),
			options.WithLogger(quietHandler),
		)
		if err != nil {
			b.Fatalf("Failed to create evaluator: %v", err)
		}

		evalData := map[string]any{constants.Readings: readings}
		ctx := context.WithValue(context.Background(), constants.EvalData, evalData)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, err = evaluator.Eval(ctx)
			if err != nil {
				b.Fatalf("Failed to evaluate formula: %v", err)
			}
		}
	})

	b.Run("CompositeProvider", func(b *testing.B) {
		staticProvider := data.NewStaticReadings(map[int64]float64{1: 2})
		contextProvider := data.NewContextProvider(constants.EvalData)
		compositeProvider := data.NewCompositeProvider(staticProvider, contextProvider)

		evaluator, err := formula.FromString(
			formulaContent,
			options.WithDefaults(),
			options.WithDataProvider(compositeProvider),
			options.WithLogger(quietHandler),
		)
		if err != nil {
			b.Fatalf("Failed to create evaluator: %v", err)
		}

		evalData := map[string]any{constants.Readings: map[int64]float64{2: 5}}
		ctx := context.WithValue(context.Background(), constants.EvalData, evalData)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, err = evaluator.Eval(ctx)
			if err != nil {
				b.Fatalf("Failed to evaluate formula: %v", err)
			}
		}
	})
}

// BenchmarkFormulaComplexity compares formulas of increasing depth,
// all evaluated with the same static readings.
func BenchmarkFormulaComplexity(b *testing.B) {
	readings := map[int64]float64{1: 2, 2: 5, 3: 7, 4: 11}
	staticProvider := data.NewStaticReadings(readings)

	benchmarks := []struct {
		name    string
		content string
	}{
		{
			name:    "PlainAdd",
			content: "#1 + #2",
		},
		{
			name:    "WeightedAverage",
			content: "(#1 * 0.25 + #2 * 0.75) / (0.25 + 0.75)",
		},
		{
			name:    "NestedFunctions",
			content: "COALESCE(MIN(#1, #2), MAX(#3, #4), 0) * 100",
		},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			evaluator, err := formula.FromString(
				bm.content,
				options.WithDefaults(),
				options.WithDataProvider(staticProvider),
				options.WithLogger(quietHandler),
			)
			if err != nil {
				b.Fatalf("Failed to create evaluator: %v", err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err = evaluator.Eval(context.Background())
				if err != nil {
					b.Fatalf("Failed to evaluate formula: %v", err)
				}
			}
		})
	}
}

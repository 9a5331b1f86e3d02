package formula

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-formula/engine"
	"github.com/robbyt/go-formula/execution/constants"
	"github.com/robbyt/go-formula/execution/data"
	"github.com/robbyt/go-formula/execution/unit"
	"github.com/robbyt/go-formula/execution/unit/loader"
	"github.com/robbyt/go-formula/machines"
	"github.com/robbyt/go-formula/machines/types"
	"github.com/robbyt/go-formula/options"
)

// NewEvaluator creates an evaluator for arithmetic formulas. The
// formula is compiled once here; the returned evaluator can run it any
// number of times.
func NewEvaluator(opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	cfg := options.DefaultConfig(types.Arith)

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	// Apply defaults as the final step to fill in any missing values
	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return createEvaluator(cfg)
}

// createEvaluator is a helper function to create an evaluator from a config
func createEvaluator(cfg *options.Config) (engine.EvaluatorWithPrep, error) {
	compiler, err := machines.NewCompiler(
		cfg.GetHandler(), cfg.GetMachineType(), cfg.GetCompilerOptions())
	if err != nil {
		return nil, err
	}

	// Derive the executable unit ID from the source URL when available
	execUnitID := ""
	sourceURL := cfg.GetLoader().GetSourceURL()
	if sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	// Create the executable unit (this compiles the formula internally)
	execUnit, err := unit.NewExecutableUnit(
		cfg.GetHandler(),
		execUnitID,
		cfg.GetLoader(),
		compiler,
		cfg.GetDataProvider(),
		nil,
	)
	if err != nil {
		return nil, err
	}

	machineEvaluator, err := machines.NewEvaluator(cfg.GetHandler(), execUnit)
	if err != nil {
		return nil, err
	}

	// Wrap the evaluator to keep the executable unit reachable
	return NewEvaluatorWrapper(machineEvaluator, execUnit), nil
}

// FromString creates an evaluator from formula source held in a string.
func FromString(content string, opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}

	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)

	return NewEvaluator(allOpts...)
}

// FromStringWithData creates an evaluator from formula source with
// fixed component readings. A ContextProvider is composed in behind the
// static readings, so PrepareContext can still override or extend them
// per call.
func FromStringWithData(
	content string,
	readings map[int64]float64,
	handler slog.Handler,
) (engine.EvaluatorWithPrep, error) {
	provider := data.NewCompositeProvider(
		data.NewStaticReadings(readings),
		data.NewContextProvider(constants.EvalData),
	)

	return FromString(
		content,
		options.WithDataProvider(provider),
		options.WithLogger(handler),
	)
}

// FromFile creates an evaluator from a formula definition on disk.
func FromFile(path string, opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	l, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}

	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)

	return NewEvaluator(allOpts...)
}

// FromFileWithData creates an evaluator from a formula definition on
// disk with fixed component readings, mirroring FromStringWithData.
func FromFileWithData(
	path string,
	readings map[int64]float64,
	handler slog.Handler,
) (engine.EvaluatorWithPrep, error) {
	provider := data.NewCompositeProvider(
		data.NewStaticReadings(readings),
		data.NewContextProvider(constants.EvalData),
	)

	return FromFile(
		path,
		options.WithDataProvider(provider),
		options.WithLogger(handler),
	)
}

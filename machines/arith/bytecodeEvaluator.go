package arith

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-formula/engine"
	"github.com/robbyt/go-formula/execution/data"
	"github.com/robbyt/go-formula/execution/unit"
	"github.com/robbyt/go-formula/internal/helpers"
)

// BytecodeEvaluator runs a compiled formula against readings supplied
// by the unit's data provider.
type BytecodeEvaluator struct {
	// execUnit contains the compiled formula and data provider
	execUnit *unit.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewBytecodeEvaluator creates a new BytecodeEvaluator object
func NewBytecodeEvaluator(handler slog.Handler, execUnit *unit.ExecutableUnit) *BytecodeEvaluator {
	handler, logger := helpers.SetupLogger(handler, "arith", "BytecodeEvaluator")

	return &BytecodeEvaluator{
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *BytecodeEvaluator) String() string {
	return "arith.BytecodeEvaluator"
}

// exec evaluates the program with the provided readings
func (be *BytecodeEvaluator) exec(
	ctx context.Context,
	prog *Program,
	readings map[int64]float64,
) (*execResult, error) {
	logger := be.logger.WithGroup("exec")
	startTime := time.Now()

	value, err := prog.Evaluate(readings)
	execTime := time.Since(startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutionFailed, err)
	}

	logger.DebugContext(ctx, "evaluation complete", "value", value)
	return newEvalResult(be.logHandler, value, execTime, ""), nil
}

// Eval evaluates the loaded formula, pulling readings from the data
// provider attached to the executable unit.
func (be *BytecodeEvaluator) Eval(ctx context.Context) (engine.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")
	if be.execUnit == nil {
		return nil, fmt.Errorf("executable unit is nil")
	}

	if be.execUnit.GetContent() == nil {
		return nil, fmt.Errorf("content is nil")
	}

	bytecode := be.execUnit.GetContent().GetByteCode()
	if bytecode == nil {
		return nil, fmt.Errorf("bytecode is nil")
	}

	prog, ok := bytecode.(*Program)
	if !ok {
		return nil, fmt.Errorf("invalid bytecode type: expected *arith.Program, got %T", bytecode)
	}

	exeID := be.execUnit.GetID()
	if exeID == "" {
		return nil, fmt.Errorf("execution ID is empty")
	}
	logger = logger.With("exeID", exeID)

	// Get input data from the provider in the executable unit
	var inputData map[string]any
	var err error

	if be.execUnit.GetDataProvider() != nil {
		inputData, err = be.execUnit.GetDataProvider().GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get input data from provider: %w", err)
		}
	} else {
		inputData = make(map[string]any)
	}

	readings, err := extractReadings(inputData)
	if err != nil {
		return nil, fmt.Errorf("failed to convert input data: %w", err)
	}

	result, err := be.exec(ctx, prog, readings)
	if err != nil {
		return nil, err
	}

	// Set the execution ID
	result.formulaExeID = exeID

	logger.Debug("formula evaluation complete", "result", result)
	return result, nil
}

// PrepareContext implements the EvalDataPreparer interface for
// formulas. It enriches the provided context with readings or other
// data, using the ExecutableUnit's DataProvider for storage.
func (be *BytecodeEvaluator) PrepareContext(
	ctx context.Context,
	d ...any,
) (context.Context, error) {
	logger := be.logger.WithGroup("PrepareContext")

	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		return ctx, fmt.Errorf("no data provider available")
	}

	return data.PrepareContextHelper(
		ctx,
		logger,
		be.execUnit.GetDataProvider(),
		d...,
	)
}

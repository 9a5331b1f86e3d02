package arith

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/robbyt/go-formula/execution/data"
	"github.com/robbyt/go-formula/internal/helpers"
)

// execResult wraps the float64 produced by one formula evaluation and
// implements engine.EvaluatorResponse.
type execResult struct {
	value        float64
	execTime     time.Duration
	formulaExeID string
	logHandler   slog.Handler
	logger       *slog.Logger
}

func newEvalResult(
	handler slog.Handler,
	value float64,
	execTime time.Duration,
	versionID string,
) *execResult {
	handler, logger := helpers.SetupLogger(handler, "arith", "execResult")

	return &execResult{
		value:        value,
		execTime:     execTime,
		formulaExeID: versionID,
		logHandler:   handler,
		logger:       logger,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %s, ExecTime: %s, FormulaExeID: %s}",
		r.Type(), r.Inspect(), r.GetExecTime(), r.GetFormulaExeID())
}

// Type always reports FLOAT; formulas produce nothing else.
func (r *execResult) Type() data.Types {
	return data.FLOAT
}

func (r *execResult) Inspect() string {
	return strconv.FormatFloat(r.value, 'g', -1, 64)
}

// Interface returns the result as a native Go value.
func (r *execResult) Interface() any {
	return r.value
}

func (r *execResult) GetFormulaExeID() string {
	return r.formulaExeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}

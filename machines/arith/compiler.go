package arith

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-formula/execution/unit"
	"github.com/robbyt/go-formula/internal/helpers"
)

// Compiler parses formula source into executable content. It
// implements unit.Compiler and is safe to share across units.
type Compiler struct {
	cache            *programCache
	disableFunctions bool
	logHandler       slog.Handler
	logger           *slog.Logger
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithCache gives the compiler a fixed-capacity LRU of parsed programs
// keyed by source, so units that share formula text share one parse.
func WithCache(capacity int) CompilerOption {
	return func(c *Compiler) {
		c.cache = newProgramCache(capacity)
	}
}

// WithoutFunctions rejects formulas that call MIN, MAX or COALESCE,
// restricting input to plain arithmetic.
func WithoutFunctions() CompilerOption {
	return func(c *Compiler) {
		c.disableFunctions = true
	}
}

// NewCompiler creates a formula compiler with the provided options.
func NewCompiler(handler slog.Handler, opts ...CompilerOption) *Compiler {
	handler, logger := helpers.SetupLogger(handler, "arith", "Compiler")

	c := &Compiler{
		logHandler: handler,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Compiler) String() string {
	return "arith.Compiler"
}

// Compile reads the formula source and parses it into executable
// content ready for an ExecutableUnit.
func (c *Compiler) Compile(reader io.ReadCloser) (unit.ExecutableContent, error) {
	if reader == nil {
		return nil, ErrContentNil
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read formula: %w", err)
	}

	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}

	return c.compile(string(body))
}

func (c *Compiler) compile(source string) (unit.ExecutableContent, error) {
	logger := c.logger
	if len(source) == 0 {
		logger.Error("Compile called with empty formula")
		return nil, ErrContentNil
	}

	logger.Debug("Starting validation")

	prog, err := c.parse(source)
	if err != nil {
		logger.Warn("Compilation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if prog == nil {
		logger.Error("Compilation returned nil program")
		return nil, ErrBytecodeNil
	}

	if c.disableFunctions && containsCall(prog.root) {
		logger.Warn("Formula rejected, function calls are disabled")
		return nil, fmt.Errorf("%w: function calls are disabled", ErrValidationFailed)
	}

	exec := newExecutable(source, prog)
	if exec == nil {
		logger.Warn("Failed to create Executable from program")
		return nil, ErrExecCreationFailed
	}

	logger.Debug("Validation completed")
	return exec, nil
}

func (c *Compiler) parse(source string) (*Program, error) {
	if c.cache != nil {
		return c.cache.getOrParse(source)
	}
	return Parse(source)
}

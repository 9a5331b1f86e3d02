package unit

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-formula/execution/data"
	"github.com/robbyt/go-formula/execution/unit/loader"
	"github.com/robbyt/go-formula/internal/helpers"
	machineTypes "github.com/robbyt/go-formula/machines/types"
)

const checksumLength = 12

// ExecutableUnit represents a specific version of a formula, including
// its compiled content and creation time. It is the handle callers
// keep for the "compile once, evaluate many times" pattern.
type ExecutableUnit struct {
	// ID is a unique identifier for this executable unit, typically derived
	// from a hash of the formula source.
	ID string

	// CreatedAt records when this executable unit was instantiated.
	CreatedAt time.Time

	// Loader loads the formula content to local memory from various
	// places (file, string, etc.).
	Loader loader.Loader

	// Compiler is the machine-specific compiler that was used to compile this unit.
	Compiler Compiler

	// Content holds the parsed program and source representation of the formula.
	Content ExecutableContent

	// DataProvider provides access to both static compile-time readings and
	// variable runtime readings during evaluation. When created with
	// NewExecutableUnit this is typically a CompositeProvider combining a
	// StaticProvider (compile-time data) with another provider (runtime data).
	DataProvider data.Provider

	// Logging components
	logHandler slog.Handler
	logger     *slog.Logger
}

// NewExecutableUnit creates a new ExecutableUnit from the provided
// loader and compiler. Static readings (sReadings) are automatically
// combined with the runtime data provider using a CompositeProvider,
// with runtime data overriding static data per component id.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	formulaLoader loader.Loader,
	compiler Compiler,
	dataProvider data.Provider,
	sReadings map[int64]float64,
) (*ExecutableUnit, error) {
	handler, logger := helpers.SetupLogger(handler, "unit", "ExecutableUnit")

	if compiler == nil {
		return nil, ErrNoCompiler
	}

	if formulaLoader == nil {
		return nil, ErrNoLoader
	}

	reader, err := formulaLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	exe, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.SHA256(exe.GetSource())
		if len(versionID) > checksumLength {
			versionID = versionID[:checksumLength]
		}
	}

	// Combine static compile-time readings with the runtime provider. The
	// ordering matters: runtime readings override static readings for
	// duplicate component ids.
	var combinedProvider data.Provider
	switch {
	case len(sReadings) > 0 && dataProvider != nil:
		combinedProvider = data.NewCompositeProvider(
			data.NewStaticReadings(sReadings), dataProvider)
	case len(sReadings) > 0:
		combinedProvider = data.NewStaticReadings(sReadings)
	default:
		combinedProvider = dataProvider
	}

	return &ExecutableUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		Loader:       formulaLoader,
		Content:      exe,
		Compiler:     compiler,
		DataProvider: combinedProvider,
		logHandler:   handler,
		logger:       logger.With("ID", versionID),
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Compiler: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.Compiler, exe.Loader)
}

// GetID returns the unique identifier (version number, or name) for this formula version.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetContent returns the validated and parsed formula as ExecutableContent.
func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

// GetCreatedAt returns the timestamp when the version was created.
func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

// GetMachineType returns the machine type this formula is intended to run on.
func (exe *ExecutableUnit) GetMachineType() machineTypes.Type {
	if exe.Content == nil {
		return machineTypes.Invalid
	}
	return exe.Content.GetMachineType()
}

// GetComponents returns the component ids the compiled formula
// references, in first-occurrence order.
func (exe *ExecutableUnit) GetComponents() []int64 {
	if exe.Content == nil {
		return nil
	}
	return exe.Content.GetComponents()
}

// GetCompiler returns the compiler used to validate and parse the formula.
func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

// GetLoader returns the loader used to load the formula.
func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.Loader
}

// GetDataProvider returns the data provider for this executable unit.
func (exe *ExecutableUnit) GetDataProvider() data.Provider {
	return exe.DataProvider
}

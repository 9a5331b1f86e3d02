package options

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-formula/execution/data"
	"github.com/robbyt/go-formula/execution/unit/loader"
	"github.com/robbyt/go-formula/machines/types"
)

// Config holds all configuration for creating a formula evaluator
type Config struct {
	// Logger for the engine
	handler slog.Handler
	// Type of machine to use
	machineType types.Type
	// Data provider for passing readings to the formula
	dataProvider data.Provider
	// Loader for the formula content
	loader loader.Loader
	// Machine-specific options
	compilerOptions any
}

// Option is a function that modifies Config
type Option func(*Config) error

// WithLogger sets the logger for the formula engine
func WithLogger(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

// WithDataProvider sets the data provider for the formula engine
func WithDataProvider(provider data.Provider) Option {
	return func(c *Config) error {
		if provider != nil {
			c.dataProvider = provider
		}
		return nil
	}
}

// WithLoader sets the formula loader
func WithLoader(l loader.Loader) Option {
	return func(c *Config) error {
		if l != nil {
			c.loader = l
		}
		return nil
	}
}

// WithCompilerOptions sets machine-specific compiler options, e.g. a
// []arith.CompilerOption for the arith machine.
func WithCompilerOptions(options any) Option {
	return func(c *Config) error {
		if options != nil {
			c.compilerOptions = options
		}
		return nil
	}
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	if c.loader == nil {
		return fmt.Errorf("no loader specified")
	}
	if c.machineType == "" {
		return fmt.Errorf("no machine type specified")
	}
	return nil
}

// GetHandler returns the configured logger
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// SetHandler sets the logger
func (c *Config) SetHandler(handler slog.Handler) {
	c.handler = handler
}

// GetMachineType returns the configured machine type
func (c *Config) GetMachineType() types.Type {
	return c.machineType
}

// SetMachineType sets the machine type
func (c *Config) SetMachineType(machineType types.Type) {
	c.machineType = machineType
}

// GetDataProvider returns the configured data provider
func (c *Config) GetDataProvider() data.Provider {
	return c.dataProvider
}

// SetDataProvider sets the data provider
func (c *Config) SetDataProvider(provider data.Provider) {
	c.dataProvider = provider
}

// GetLoader returns the configured loader
func (c *Config) GetLoader() loader.Loader {
	return c.loader
}

// GetCompilerOptions returns the machine-specific compiler options
func (c *Config) GetCompilerOptions() any {
	return c.compilerOptions
}

// SetCompilerOptions sets the machine-specific compiler options
func (c *Config) SetCompilerOptions(options any) {
	c.compilerOptions = options
}

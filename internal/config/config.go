package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// Default values
	DefaultCapacity = 200
	DefaultSeed     = 0
)

// Config holds all configuration for the wrsample command
type Config struct {
	Capacity   int
	Seed       int64
	OutputFile string
	Quantiles  []float64
	Quiet      bool

	// Inputs are the files to read; empty means stdin.
	Inputs []string
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		Capacity: DefaultCapacity,
		Seed:     DefaultSeed,
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive: %d", c.Capacity)
	}

	for _, q := range c.Quantiles {
		if !(q >= 0 && q <= 1) {
			return fmt.Errorf("quantile out of range [0, 1]: %v", q)
		}
	}

	if c.OutputFile != "" && !strings.EqualFold(filepath.Ext(c.OutputFile), ".parquet") {
		return fmt.Errorf("output file must have a .parquet extension: %s", c.OutputFile)
	}

	return nil
}

// String returns a human-readable summary
func (c *Config) String() string {
	source := "stdin"
	if len(c.Inputs) > 0 {
		source = strings.Join(c.Inputs, ", ")
	}
	return fmt.Sprintf("capacity=%d input=%s", c.Capacity, source)
}

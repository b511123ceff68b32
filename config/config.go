// Package config holds the process-wide library settings: the matrix
// cell budget that bounds chunked impact computations, and the default
// log level. Values come from CATRISK_-prefixed environment variables
// with sensible defaults, so the library works unconfigured.
package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// Defaults applied when the environment does not override them.
const (
	// DefaultMaxMatrixSize caps any single impact sub-matrix at this
	// many cells (events × exposure points in one chunk).
	DefaultMaxMatrixSize = 100_000_000

	// DefaultLogLevel is the library logger level.
	DefaultLogLevel = "info"

	envPrefix = "CATRISK"
)

// Config holds all library configuration.
type Config struct {
	// MaxMatrixSize bounds the cell count of one impact sub-matrix chunk.
	MaxMatrixSize int
	// LogLevel names the default logger level: trace, debug, info,
	// warn, error, or disabled.
	LogLevel string
}

// Load reads configuration from the environment:
// CATRISK_MAX_MATRIX_SIZE and CATRISK_LOG_LEVEL. Missing variables fall
// back to the package defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("MAX_MATRIX_SIZE", DefaultMaxMatrixSize)
	v.SetDefault("LOG_LEVEL", DefaultLogLevel)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cfg := &Config{
		MaxMatrixSize: v.GetInt("MAX_MATRIX_SIZE"),
		LogLevel:      v.GetString("LOG_LEVEL"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.MaxMatrixSize < 1 {
		return fmt.Errorf("MAX_MATRIX_SIZE must be at least 1")
	}
	if c.LogLevel == "" {
		return fmt.Errorf("LOG_LEVEL is required")
	}
	return nil
}

// Default returns a configuration carrying only the package defaults,
// ignoring the environment.
func Default() *Config {
	return &Config{MaxMatrixSize: DefaultMaxMatrixSize, LogLevel: DefaultLogLevel}
}

var (
	once       sync.Once
	current    *Config
	currentErr error
)

// Current returns the process-wide configuration, loaded once from the
// environment on first use. The load result is cached, including its
// error, so a broken environment keeps reporting the same failure.
func Current() (*Config, error) {
	once.Do(func() {
		current, currentErr = Load()
	})
	return current, currentErr
}

package engine

import (
	"github.com/rs/zerolog"

	"github.com/riskforge/catrisk/config"
	"github.com/riskforge/catrisk/logging"
)

const panicMaxCellsInvalid = "engine: WithMaxCells: budget must be positive"

// Option mutates computation options. Setters validate their input and
// panic on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Entry points accept ...Option and resolve them through
// gatherOptions, starting from DefaultOptions.
type Options struct {
	saveMatrix bool
	maxCells   int
	logger     zerolog.Logger
}

// DefaultOptions returns the production defaults: no matrix retention,
// the configured matrix cell budget, and the process-wide logger.
func DefaultOptions() Options {
	maxCells := config.DefaultMaxMatrixSize
	if cfg, err := config.Current(); err == nil {
		maxCells = cfg.MaxMatrixSize
	}
	return Options{
		maxCells: maxCells,
		logger:   logging.Default(),
	}
}

// WithSaveMatrix retains the full event × point impact matrix on the
// computed Impact. Memory grows with the stored entry count.
func WithSaveMatrix() Option {
	return func(o *Options) { o.saveMatrix = true }
}

// WithMaxCells overrides the matrix cell budget: no intermediate chunk
// holds more than n cells. Panics when n is not positive.
func WithMaxCells(n int) Option {
	if n <= 0 {
		panic(panicMaxCellsInvalid)
	}
	return func(o *Options) { o.maxCells = n }
}

// WithLogger routes computation logs to the given logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.logger = log }
}

// gatherOptions resolves the effective options for one call.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Package logging builds the library's zerolog loggers. Computation
// packages log through an injected zerolog.Logger and fall back to
// Default() when none is given; Nop() silences everything.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/riskforge/catrisk/config"
)

var (
	once   sync.Once
	shared zerolog.Logger
)

// Default returns the shared library logger: console format on stderr,
// level taken from configuration. Built once; later calls return the
// same instance. A broken environment degrades to the default level
// rather than failing.
func Default() zerolog.Logger {
	once.Do(func() {
		level := config.DefaultLogLevel
		if cfg, err := config.Current(); err == nil {
			level = cfg.LogLevel
		}
		shared = New(os.Stderr, level)
	})
	return shared
}

// New builds a console-format logger writing to w at the named level.
// Unknown level names fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Nop returns a logger that discards every event.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

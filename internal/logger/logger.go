// Package logger provides the structured logger used across the kzg
// engine. It mirrors consensys/gnark's internal logger package: a single
// package-level zerolog.Logger, set to Info level by default, so the
// Debug-level timing lines emitted from the commitment-scheme entry
// points are suppressed unless SetLevel lowers the level.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
)

// Logger returns the package-level logger. Call sites attach fields with
// .With()...Logger() and log at Debug for per-call timing, matching
// gnark's own logger.Logger().With().Str(...).Logger() convention.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetOutput redirects all subsequent log output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Output(w)
}

// SetLevel adjusts the minimum level that will be emitted.
func SetLevel(lvl zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(lvl)
}

// Disable silences all output, including Debug timing lines. Useful for
// tests that don't want log noise on stderr.
func Disable() {
	SetLevel(zerolog.Disabled)
}

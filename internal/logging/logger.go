// Package logging builds the zap loggers used across unitconv. One-shot CLI
// commands log to stderr; the interactive form logs to a file because
// writing to the terminal would corrupt the alt screen.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger per the given settings. debug lowers the level to
// Debug; file, when non-empty, redirects all output there (parent
// directories are created as needed).
func New(debug bool, file string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything. For tests and for callers
// that have not set up logging yet.
func Nop() *zap.Logger {
	return zap.NewNop()
}

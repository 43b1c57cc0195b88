// Package logging builds the zap logger shared by the host components.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a production JSON logger at the given level ("debug", "info", ...).
// An empty level means info.
func New(level string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		cfg.Level = lvl
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Must is New that panics, for main
func Must(level string) *zap.SugaredLogger {
	logger, err := New(level)
	if err != nil {
		panic(err)
	}
	return logger
}

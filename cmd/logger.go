package cmd

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger returns a JSON logger at level, writing to file or to stderr if file is empty.
func NewLogger(level, file string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	c := zap.NewProductionConfig()
	c.Level = lvl
	if file != "" {
		c.OutputPaths = []string{file}
		c.ErrorOutputPaths = []string{file}
	}
	l, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// newLogger returns the logger of the current configuration.
// It never fails: a broken configuration is reported and logs are dropped.
func newLogger() *zap.Logger {
	l, err := NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v, logs are disabled\n", err)
		return zap.NewNop()
	}
	return l
}

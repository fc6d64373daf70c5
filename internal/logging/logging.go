// Package logging builds the zap loggers used by the command-line tools.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option adjusts the zap configuration before the logger is built.
type Option func(cfg *zap.Config) error

// WithLevel sets the minimum level by name ("debug", "info", "warn", ...).
func WithLevel(name string) Option {
	return func(cfg *zap.Config) error {
		lvl, err := zapcore.ParseLevel(strings.TrimSpace(name))
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		return nil
	}
}

// WithDevelopment switches to human-readable console output with
// development-mode stack traces.
func WithDevelopment(dev bool) Option {
	return func(cfg *zap.Config) error {
		if !dev {
			return nil
		}
		cfg.Development = true
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		return nil
	}
}

// WithFields attaches fields to every log line. Empty keys are ignored.
func WithFields(fields map[string]any) Option {
	return func(cfg *zap.Config) error {
		if cfg.InitialFields == nil {
			cfg.InitialFields = map[string]any{}
		}
		for key, value := range fields {
			if key == "" {
				continue
			}
			cfg.InitialFields[key] = value
		}
		return nil
	}
}

// WithOutput replaces the output paths ("stderr", "stdout" or file paths).
func WithOutput(paths ...string) Option {
	return func(cfg *zap.Config) error {
		if len(paths) == 0 {
			return fmt.Errorf("log output: no paths given")
		}
		cfg.OutputPaths = paths
		return nil
	}
}

// New builds a logger from zap's production configuration (JSON to stderr
// at info level) and opts.
func New(opts ...Option) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return cfg.Build()
}

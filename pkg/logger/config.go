package logger

import (
	"fmt"
	"log/slog"

	"github.com/dscvit/dscv/pkg/environment"
)

// Config holds logger configuration.
type Config struct {
	// Level overrides the environment default: debug, info, warn or error.
	Level string `env:"LOG_LEVEL"`
	// Format overrides the environment default: json or text.
	Format string `env:"LOG_FORMAT"`
}

// NewFromConfig builds a logger with environment defaults, then applies any
// explicit level or format from cfg, then opts.
func NewFromConfig(cfg Config, env environment.Environment, service string, opts ...Option) (*slog.Logger, error) {
	configOpts := []Option{WithEnvironment(env, service)}

	if cfg.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("logger: invalid level %q: %w", cfg.Level, err)
		}
		configOpts = append(configOpts, WithLevel(level))
	}

	if cfg.Format != "" {
		f := Format(cfg.Format)
		if f != FormatJSON && f != FormatText {
			return nil, fmt.Errorf("logger: invalid format %q", cfg.Format)
		}
		configOpts = append(configOpts, WithFormat(f))
	}

	return New(append(configOpts, opts...)...), nil
}

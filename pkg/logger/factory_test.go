package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dscvit/dscv/pkg/environment"
	"github.com/dscvit/dscv/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(key{}).(string); ok {
					return slog.String("id", v), true
				}
				return slog.Attr{}, false
			}),
		)

		log.With(slog.String("k", "v")).InfoContext(context.WithValue(context.Background(), key{}, "42"), "context msg")

		entry := decode(t, buf)
		assert.Equal(t, "42", entry["id"])
		assert.Equal(t, "v", entry["k"])
	})
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Production, "dscv"), logger.WithOutput(buf))
		log.Debug("dropped")
		log.Info("kept")

		entry := decode(t, buf)
		assert.Equal(t, "kept", entry["msg"])
		assert.Equal(t, "dscv", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Development, ""), logger.WithOutput(buf))
		log.Debug("debugging")

		assert.Contains(t, buf.String(), "msg=debugging")
		assert.Contains(t, buf.String(), "env=development")
		assert.NotContains(t, buf.String(), "service=")
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Run("overrides environment defaults", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := logger.NewFromConfig(
			logger.Config{Level: "warn", Format: "json"},
			environment.Development, "dscv",
			logger.WithOutput(buf),
		)
		require.NoError(t, err)

		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.Equal(t, "WARN", decode(t, buf)["level"])
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.NewFromConfig(logger.Config{Level: "loud"}, environment.Production, "dscv")
		assert.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := logger.NewFromConfig(logger.Config{Format: "xml"}, environment.Production, "dscv")
		assert.Error(t, err)
	})
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

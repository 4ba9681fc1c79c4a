package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/environment"
	"github.com/dmitrymomot/validationkit/pkg/logger"
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
		require.NotNil(t, log)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v := ctx.Value(ctxKey); v != nil {
					return slog.String("id", v.(string)), true
				}
				return slog.Attr{}, false
			}),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.With("static", 1).InfoContext(ctx, "context msg")
		entry := decode(t, buf)
		assert.Equal(t, "42", entry["id"])
		assert.EqualValues(t, 1, entry["static"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("xml")))
		})
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development is debug text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithDevelopment("svc"), logger.WithOutput(buf))
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "DEBUG")
		assert.Contains(t, out, "service=svc")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production is info json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithProduction("svc"), logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "svc", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("aliases are accepted", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("stage", "svc"), logger.WithOutput(buf))
		log.Info("msg")
		assert.Equal(t, "staging", decode(t, buf)["env"])
	})
}

func TestFromConfig(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.FromConfig(logger.Config{Level: "warn", Format: "JSON", Env: "development", Service: "api"}),
		logger.WithOutput(buf),
	)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	entry := decode(t, buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "api", entry["service"])
}

func TestParseLevel(t *testing.T) {
	lvl, err := logger.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = logger.ParseLevel("loud")
	require.Error(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestRequestEnvironmentExtractor(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithProduction("svc"), logger.WithOutput(buf))

	ctx := environment.WithContext(context.Background(), environment.Staging)
	log.InfoContext(ctx, "msg")

	// the static attr comes first; the context value is appended
	assert.Contains(t, buf.String(), `"env":"staging"`)
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eapd/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello", logger.Event("LOGIN_REQUEST"))

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "LOGIN_REQUEST", entry["event"])
	})

	t.Run("debug suppressed at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText)).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("context values", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", ctxKey{}))

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "with id")
		assert.Equal(t, "req-1", decode(t, buf)["request_id"])

		buf.Reset()
		log.InfoContext(context.Background(), "without id")
		assert.NotContains(t, decode(t, buf), "request_id")
	})

	t.Run("context extractors", func(t *testing.T) {
		buf := &bytes.Buffer{}
		extract := func(ctx context.Context) (slog.Attr, bool) {
			v, ok := ctx.Value(ctxKey{}).(string)
			return slog.String("tenant", v), ok
		}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(extract, nil))

		log.InfoContext(context.WithValue(context.Background(), ctxKey{}, "ak"), "x")
		assert.Equal(t, "ak", decode(t, buf)["tenant"])
	})

	t.Run("static attrs", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test"))).Info("x")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "eapd"), logger.WithOutput(buf))
		log.Debug("hidden")
		log.Info("shown")

		entry := decode(t, buf)
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "eapd", entry["service"])
		assert.Equal(t, logger.EnvProduction, entry["env"])
	})

	t.Run("anything else is development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithEnvironment("local", "eapd"), logger.WithOutput(buf)).Debug("shown")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "env=development")
	})
}

func TestNewFromConfig(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.NewFromConfig(logger.Config{Env: "development", Level: "warn", Format: "json"}, "eapd", buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	assert.Equal(t, "shown", decode(t, buf)["msg"])

	_, err = logger.NewFromConfig(logger.Config{Level: "loud"}, "eapd", buf)
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)

	_, err = logger.NewFromConfig(logger.Config{Format: "xml"}, "eapd", buf)
	assert.ErrorIs(t, err, logger.ErrInvalidFormat)
}

func TestAttrs(t *testing.T) {
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.UserID("").Equal(slog.Attr{}))
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))

	err := errors.New("boom")
	assert.Equal(t, err, logger.Error(err).Value.Any())
	assert.Equal(t, "u1", logger.UserID("u1").Value.String())
	assert.Equal(t, "authenticated", logger.State("authenticated").Value.String())
	assert.Equal(t, "component", logger.Component("x").Key)
}

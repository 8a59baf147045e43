package logger_test

import (
	"net/http/httptest"
	"testing"

	"spool-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("console debug", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("json warn", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "warn", Format: "json"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.New(&logger.Config{Level: "loud"})
		assert.Error(t, err)
	})
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "abc-123")
		logger.WithRayID(base, c).Info("tagged")
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("untagged")
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/plain", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc-123", entries[0].ContextMap()["ray_id"])
	assert.NotContains(t, entries[1].ContextMap(), "ray_id")
}

func TestWithRun(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.WithRun(zap.New(core), "X1C", "run-7").Info("pass")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "X1C", fields["printer"])
	assert.Equal(t, "run-7", fields["run_id"])
}

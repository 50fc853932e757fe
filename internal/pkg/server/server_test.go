package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mototrack/mototrack/internal/pkg/logger"
	"github.com/mototrack/mototrack/internal/pkg/models"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()

	zl, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"}, "server-test")
	require.NoError(t, err)
	return zl
}

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), testLogger(t), 8080, 0)

	assert.Equal(t, 30*time.Second, gs.shutdownTimeout)
}

func TestShutdown_RunsCleanupsInReverseOrder(t *testing.T) {
	gs := NewGracefulServer(echo.New(), testLogger(t), 8080, time.Second)

	var order []string
	gs.OnShutdown(func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	gs.OnShutdown(func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	err := gs.Shutdown()

	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestShutdown_ContinuesPastFailingCleanup(t *testing.T) {
	gs := NewGracefulServer(echo.New(), testLogger(t), 8080, time.Second)

	ran := false
	gs.OnShutdown(func(context.Context) error {
		ran = true
		return nil
	})
	gs.OnShutdown(func(context.Context) error {
		return errors.New("close failed")
	})

	err := gs.Shutdown()

	require.NoError(t, err)
	assert.True(t, ran)
}

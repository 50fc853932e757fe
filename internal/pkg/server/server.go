package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mototrack/mototrack/internal/pkg/logger"
)

// CleanupFunc releases a resource during shutdown
type CleanupFunc func(context.Context) error

// GracefulServer runs the Echo server and tears down registered resources
// once an interrupt or SIGTERM arrives
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	port            int
	shutdownTimeout time.Duration
	cleanups        []CleanupFunc
}

// NewGracefulServer creates a server that shuts down cleanly on signals
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// OnShutdown registers a cleanup function. Cleanups run after the HTTP
// listener has drained, most recently registered first, so dependents close
// before the connections they use.
func (s *GracefulServer) OnShutdown(fn CleanupFunc) {
	s.cleanups = append(s.cleanups, fn)
}

// Start runs the server and blocks until a shutdown signal is handled
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	// Ctrl+C locally, SIGTERM from the container runtime
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown drains the HTTP listener and runs every registered cleanup.
// Cleanup errors are logged but do not stop the remaining cleanups.
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down server",
		logger.String("timeout", s.shutdownTimeout.String()),
		logger.Int("cleanups", len(s.cleanups)))

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}

	for i := len(s.cleanups) - 1; i >= 0; i-- {
		if cerr := s.cleanups[i](ctx); cerr != nil {
			s.logger.Error("Cleanup failed during shutdown",
				logger.Int("cleanup", i),
				logger.Err(cerr))
		}
	}

	s.logger.Info("Shutdown completed")
	return err
}

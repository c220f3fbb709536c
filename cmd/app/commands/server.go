package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/custody/internal/app"
	"github.com/allisson/custody/internal/config"
)

// shutdownTimeout bounds how long in-flight requests get to finish after a stop signal.
const shutdownTimeout = 30 * time.Second

// RunServer starts the API and metrics servers and blocks until SIGINT/SIGTERM or a fatal
// server error. Locks held by in-flight withdrawals are released before the container closes.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting server",
		slog.String("version", version),
		slog.String("driver", cfg.DBDriver),
		slog.Int("port", cfg.ServerPort),
	)

	defer closeContainer(container, logger)

	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stoppers := []stopper{{name: "api server", stop: server.Shutdown}}
	serverErr := make(chan error, 2)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErr <- fmt.Errorf("api server error: %w", err)
		}
	}()

	if metricsServer != nil {
		stoppers = append(stoppers, stopper{name: "metrics server", stop: metricsServer.Shutdown})
		go func() {
			if err := metricsServer.Start(ctx); err != nil {
				serverErr <- fmt.Errorf("metrics server error: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-serverErr:
		logger.Error("server error, initiating shutdown", slog.Any("error", runErr))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	return errors.Join(runErr, stopAll(shutdownCtx, stoppers))
}

type stopper struct {
	name string
	stop func(ctx context.Context) error
}

// stopAll calls every stopper even when an earlier one fails.
func stopAll(ctx context.Context, stoppers []stopper) error {
	var errs []error
	for _, s := range stoppers {
		if err := s.stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s shutdown: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Black-And-White-Club/matchday/app/shared/observability/attr"
)

// Start serves HTTP until ctx is canceled or a listener fails, then shuts down.
func (app *App) Start(ctx context.Context) error {
	logger := app.Observability.Provider.Logger

	errCh := make(chan error, 2)
	serve := func(name string, srv *http.Server) {
		logger.InfoContext(ctx, "Starting server",
			attr.String("server", name),
			attr.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s server: %w", name, err)
		}
	}

	go serve("api", app.server)
	if app.metricsServer != nil {
		go serve("metrics", app.metricsServer)
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errCh:
		logger.Error("Server failed", attr.Error(runErr))
	}

	if err := app.Shutdown(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Shutdown drains the HTTP servers within the configured timeout and closes the event
// bus and database.
func (app *App) Shutdown(ctx context.Context) error {
	logger := app.Observability.Provider.Logger
	ctx, cancel := context.WithTimeout(ctx, app.Config.HTTP.ShutdownTimeout)
	defer cancel()

	var errs []error
	if app.server != nil {
		if err := app.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shut down api server: %w", err))
		}
	}
	if app.metricsServer != nil {
		if err := app.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shut down metrics server: %w", err))
		}
	}
	if app.EventBus != nil {
		if err := app.EventBus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event bus: %w", err))
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	logger.Info("Application shut down")
	return errors.Join(errs...)
}

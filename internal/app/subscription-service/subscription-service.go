package subscriptionservice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/magabrotheeeer/subscription-service/internal/app/backend"
	"github.com/magabrotheeeer/subscription-service/internal/config"
	"github.com/magabrotheeeer/subscription-service/internal/lib/sl"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	server  *http.Server
	logger  *slog.Logger
	backend *backend.Backend
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	b, err := backend.Build(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      NewRouter(logger, b.Service),
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		backend: b,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.closeBackend()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.closeBackend()
		return err
	}
}

func (a *App) closeBackend() {
	if err := a.backend.Close(); err != nil {
		a.logger.Error("failed to release resources", sl.Err(err))
	}
}

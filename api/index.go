// Package handler - точка входа serverless-функции. Обслуживает те же маршруты,
// что и долгоживущий сервер. Инициализация выполняется один раз при холодном старте.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/magabrotheeeer/subscription-service/internal/app/backend"
	"github.com/magabrotheeeer/subscription-service/internal/config"
	"github.com/magabrotheeeer/subscription-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/subscription-service/internal/http/response"
	"github.com/magabrotheeeer/subscription-service/internal/http/router"
	"github.com/magabrotheeeer/subscription-service/internal/lib/sl"
)

var (
	once     sync.Once
	routes   http.Handler
	setupErr error
)

func setup() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", sl.Err(err))
		setupErr = err
		return
	}

	b, err := backend.Build(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to build backend", sl.Err(err))
		setupErr = err
		return
	}

	routes = router.New(logger, b.Service, middlewarectx.NewMetrics(prometheus.DefaultRegisterer))
	logger.Info("serverless handler initialized", slog.String("backend", cfg.Mode))
}

// Handler обрабатывает запрос serverless-платформы.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)

	if setupErr != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Internal("Server initialization failed", setupErr))
		return
	}
	routes.ServeHTTP(w, r)
}

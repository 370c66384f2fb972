// Package subscriptionservice собирает HTTP-сервер API аккаунтов.
package subscriptionservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/subscription-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/subscription-service/internal/http/router"
)

// NewRouter возвращает маршруты API вместе с /metrics и документацией.
func NewRouter(logger *slog.Logger, service router.Service) chi.Router {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := router.New(logger, service, middlewarectx.NewMetrics(reg))

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}

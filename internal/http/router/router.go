// Package router собирает маршруты API аккаунтов. Один и тот же роутер
// обслуживает долгоживущий сервер и serverless-функцию.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-service/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/subscription-service/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/subscription-service/internal/http/handlers/health"
	"github.com/magabrotheeeer/subscription-service/internal/http/handlers/subscription/extend"
	"github.com/magabrotheeeer/subscription-service/internal/http/handlers/subscription/read"
	"github.com/magabrotheeeer/subscription-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/subscription-service/internal/http/response"
)

// Service объединяет операции, которые нужны обработчикам.
// Ему удовлетворяют и локальный AccountService, и HTTP-клиент внешнего API.
type Service interface {
	register.Service
	login.Service
	read.Service
	extend.Service
}

// New создаёт роутер со всеми маршрутами. metrics может быть nil.
func New(logger *slog.Logger, service Service, metrics *middlewarectx.Metrics) chi.Router {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)
	if metrics != nil {
		r.Use(metrics.Middleware)
	}
	r.Use(
		middlewarectx.CORS(),
		middlewarectx.AllowOptions,
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(response.MsgNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error(response.MsgMethodNotAllowed))
	})

	registerHandler := register.New(logger, service)
	loginHandler := login.New(logger, service)
	readHandler := read.New(logger, service)

	r.Method(http.MethodPost, "/api/auth/create-account", registerHandler)
	r.Method(http.MethodPost, "/api/create-account", registerHandler)
	r.Method(http.MethodPost, "/api/auth/login", loginHandler)
	r.Method(http.MethodPost, "/api/login", loginHandler)
	r.Method(http.MethodPost, "/api/subscription/extend", extend.New(logger, service))
	r.Method(http.MethodGet, "/api/subscription/{userId}", readHandler)
	r.Method(http.MethodGet, "/api/subscription", readHandler)
	r.Method(http.MethodGet, "/health", health.New(logger))

	return r
}

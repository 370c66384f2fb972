// Package middlewarectx содержит HTTP middleware сервиса: CORS, ответы на OPTIONS
// и сбор метрик запросов.
package middlewarectx

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS разрешает запросы с любых источников.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{
			"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version", "Content-Length",
			"Content-MD5", "Content-Type", "Date", "X-Api-Version", "Authorization",
		},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}

// AllowOptions отвечает 200 на любой OPTIONS-запрос, не доходя до обработчиков.
func AllowOptions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

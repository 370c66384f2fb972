// Package register реализует HTTP-обработчик регистрации аккаунта.
package register

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-service/internal/http/response"
	"github.com/magabrotheeeer/subscription-service/internal/lib/sl"
	services "github.com/magabrotheeeer/subscription-service/internal/services/account"
)

// Request - входные данные для регистрации
type Request struct {
	Email            string `json:"email" example:"a@b.com"`
	Password         string `json:"password" example:"secret1"`
	SubscriptionDays *int   `json:"subscriptionDays,omitempty" example:"30"`
}

// Service описывает бизнес-логику регистрации.
type Service interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.Registered, error)
}

// Handler обрабатывает запросы на создание аккаунта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Регистрация аккаунта
// @Description Создает аккаунт с подпиской на subscriptionDays дней (по умолчанию 30).
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные нового аккаунта"
// @Success 201 {object} response.RegisterResponse "Аккаунт создан"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 409 {object} response.ErrorResponse "Email уже зарегистрирован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/create-account [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.MsgInvalidBody))
		return
	}

	res, err := h.service.Register(r.Context(), services.RegisterInput{
		Email:            req.Email,
		Password:         req.Password,
		SubscriptionDays: req.SubscriptionDays,
	})
	if err != nil {
		status, body := response.FromError(err, response.MsgCreateFailed)
		if status >= http.StatusInternalServerError {
			log.Error("registration failed", sl.Err(err))
		} else {
			log.Info("registration rejected", slog.Int("status", status), sl.Err(err))
		}
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	log.Info("account registered", sl.UserID(res.UserID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.NewRegisterResponse(res))
}

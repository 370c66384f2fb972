// Package login реализует HTTP-обработчик входа в аккаунт.
//
// Неизвестный email и неверный пароль дают один и тот же ответ 401.
package login

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

// Request - учетные данные пользователя
type Request struct {
	Email    string `json:"email" example:"a@b.com"`
	Password string `json:"password" example:"secret1"`
}

// Service описывает бизнес-логику входа.
type Service interface {
	Login(ctx context.Context, in services.LoginInput) (*services.LoggedIn, error)
}

// Handler обрабатывает запросы на вход.
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
// @Summary Вход в аккаунт
// @Description Проверяет email и пароль. Возвращает состояние подписки.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.LoginResponse "Успешный вход"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

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

	res, err := h.service.Login(r.Context(), services.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		status, body := response.FromError(err, response.MsgLoginFailed)
		if status >= http.StatusInternalServerError {
			log.Error("login failed", sl.Err(err))
		} else {
			log.Info("login rejected", slog.Int("status", status))
		}
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	log.Info("user logged in", sl.UserID(res.UserID))
	render.JSON(w, r, response.NewLoginResponse(res))
}

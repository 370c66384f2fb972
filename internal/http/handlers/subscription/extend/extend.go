// Package extend реализует HTTP-обработчик продления подписки.
package extend

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

// Request - входные данные продления
type Request struct {
	UserID         string `json:"userId"`
	AdditionalDays *int   `json:"additionalDays,omitempty" example:"30"`
}

// Service описывает бизнес-логику продления подписки.
type Service interface {
	Extend(ctx context.Context, in services.ExtendInput) (*services.Extended, error)
}

// Handler обрабатывает запросы на продление подписки.
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
// @Summary Продление подписки
// @Description Прибавляет additionalDays календарных дней (по умолчанию 30) к текущей дате истечения.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param request body Request true "Пользователь и количество дней"
// @Success 200 {object} response.ExtendResponse "Подписка продлена"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/subscription/extend [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.extend"

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

	res, err := h.service.Extend(r.Context(), services.ExtendInput{
		UserID:         req.UserID,
		AdditionalDays: req.AdditionalDays,
	})
	if err != nil {
		status, body := response.FromError(err, response.MsgExtendFailed)
		if status >= http.StatusInternalServerError {
			log.Error("failed to extend subscription", sl.Err(err))
		} else {
			log.Info("extension rejected", slog.Int("status", status), sl.UserID(req.UserID))
		}
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	log.Info("subscription extended", sl.UserID(res.UserID), slog.Int("days_remaining", res.DaysRemaining))
	render.JSON(w, r, response.NewExtendResponse(res))
}

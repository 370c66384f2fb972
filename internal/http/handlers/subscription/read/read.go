// Package read реализует HTTP-обработчик получения состояния подписки.
//
// Handler берёт идентификатор пользователя из URL (/api/subscription/{userId})
// или из параметра запроса (?userId=) и возвращает оставшиеся дни и статус.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-service/internal/http/response"
	"github.com/magabrotheeeer/subscription-service/internal/lib/sl"
	services "github.com/magabrotheeeer/subscription-service/internal/services/account"
)

// Service описывает бизнес-логику чтения подписки.
type Service interface {
	Subscription(ctx context.Context, userID string) (*services.SubscriptionInfo, error)
}

// Handler обрабатывает запросы на получение подписки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Состояние подписки
// @Description Возвращает оставшиеся дни, дату истечения и статус подписки пользователя.
// @Tags Subscriptions
// @Produce  json
// @Param userId path string true "Идентификатор пользователя"
// @Success 200 {object} response.SubscriptionResponse "Состояние подписки"
// @Failure 400 {object} response.ErrorResponse "Не указан идентификатор"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/subscription/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := chi.URLParam(r, "userId")
	if userID == "" {
		userID = r.URL.Query().Get("userId")
	}

	res, err := h.service.Subscription(r.Context(), userID)
	if err != nil {
		status, body := response.FromError(err, response.MsgFetchFailed)
		if status >= http.StatusInternalServerError {
			log.Error("failed to read subscription", sl.Err(err))
		} else {
			log.Info("subscription request rejected", slog.Int("status", status), sl.UserID(userID))
		}
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	log.Debug("subscription read", sl.UserID(userID), slog.Int("days_remaining", res.DaysRemaining))
	render.JSON(w, r, response.NewSubscriptionResponse(res))
}

package read

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-service/internal/models"
	services "github.com/magabrotheeeer/subscription-service/internal/services/account"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Subscription(ctx context.Context, userID string) (*services.SubscriptionInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SubscriptionInfo), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newRouter(h http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/api/subscription/{userId}", h)
	r.Method(http.MethodGet, "/api/subscription", h)
	return r
}

func TestReadHandler_ServeHTTP(t *testing.T) {
	info := &services.SubscriptionInfo{
		UserID:        "uid-1",
		Email:         "a@b.com",
		DaysRemaining: 0,
		ExpiryDate:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:        models.StatusExpired,
		CreatedAt:     time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		path           string
		wantUserID     string
		mockResult     *services.SubscriptionInfo
		mockErr        error
		wantStatusCode int
		wantBody       map[string]any
	}{
		{
			name:           "path parameter",
			path:           "/api/subscription/uid-1",
			wantUserID:     "uid-1",
			mockResult:     info,
			wantStatusCode: http.StatusOK,
			wantBody: map[string]any{
				"success":       true,
				"userId":        "uid-1",
				"email":         "a@b.com",
				"daysRemaining": float64(0),
				"expiryDate":    "2024-12-31T00:00:00.000Z",
				"status":        "expired",
				"createdAt":     "2024-12-01T00:00:00.000Z",
			},
		},
		{
			name:           "query parameter",
			path:           "/api/subscription?userId=uid-1",
			wantUserID:     "uid-1",
			mockResult:     info,
			wantStatusCode: http.StatusOK,
			wantBody: map[string]any{
				"success":       true,
				"userId":        "uid-1",
				"email":         "a@b.com",
				"daysRemaining": float64(0),
				"expiryDate":    "2024-12-31T00:00:00.000Z",
				"status":        "expired",
				"createdAt":     "2024-12-01T00:00:00.000Z",
			},
		},
		{
			name:           "missing user id",
			path:           "/api/subscription",
			wantUserID:     "",
			mockErr:        &services.ValidationError{Message: services.MsgUserIDRequired},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"success": false, "message": "User ID is required"},
		},
		{
			name:           "unknown user",
			path:           "/api/subscription/ghost",
			wantUserID:     "ghost",
			mockErr:        services.ErrAccountNotFound,
			wantStatusCode: http.StatusNotFound,
			wantBody:       map[string]any{"success": false, "message": "User not found"},
		},
		{
			name:           "internal error",
			path:           "/api/subscription/uid-1",
			wantUserID:     "uid-1",
			mockErr:        errors.New("boom"),
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       map[string]any{"success": false, "message": "Error fetching subscription", "error": "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			svc.On("Subscription", mock.Anything, tt.wantUserID).Return(tt.mockResult, tt.mockErr).Once()
			router := newRouter(New(newNoopLogger(), svc))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)
			var got map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)

			svc.AssertExpectations(t)
		})
	}
}

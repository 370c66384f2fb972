package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	services "github.com/magabrotheeeer/subscription-service/internal/services/account"
)

// Мок сервиса с методом Register
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, in services.RegisterInput) (*services.Registered, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Registered), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	seven := 7
	expiry := time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *ServiceMock)
		wantStatusCode int
		wantBody       map[string]any
	}{
		{
			name: "valid registration",
			body: `{"email":"a@b.com","password":"secret1","subscriptionDays":7}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, services.RegisterInput{
					Email: "a@b.com", Password: "secret1", SubscriptionDays: &seven,
				}).Return(&services.Registered{
					UserID: "uid-1", Email: "a@b.com", DaysRemaining: 7, ExpiryDate: expiry,
				}, nil).Once()
			},
			wantStatusCode: http.StatusCreated,
			wantBody: map[string]any{
				"success":       true,
				"userId":        "uid-1",
				"email":         "a@b.com",
				"daysRemaining": float64(7),
				"expiryDate":    "2025-03-17T12:00:00.000Z",
				"message":       "Account created successfully",
			},
		},
		{
			name:           "invalid json body",
			body:           `not a json`,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"success": false, "message": "invalid request body"},
		},
		{
			name: "empty body is validated by service",
			body: ``,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, services.RegisterInput{}).
					Return(nil, &services.ValidationError{Message: services.MsgCredentialsRequired}).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"success": false, "message": "Email and password are required"},
		},
		{
			name: "short password",
			body: `{"email":"a@b.com","password":"abc"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, mock.Anything).
					Return(nil, &services.ValidationError{Message: services.MsgPasswordTooShort}).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"success": false, "message": "Password must be at least 6 characters"},
		},
		{
			name: "duplicate email",
			body: `{"email":"a@b.com","password":"secret1"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, services.ErrEmailTaken).Once()
			},
			wantStatusCode: http.StatusConflict,
			wantBody:       map[string]any{"success": false, "message": "Email already registered"},
		},
		{
			name: "internal error",
			body: `{"email":"a@b.com","password":"secret1"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       map[string]any{"success": false, "message": "Error creating account", "error": "db down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			handler := New(newNoopLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/create-account", bytes.NewBufferString(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

			var got map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)

			svc.AssertExpectations(t)
		})
	}
}

package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/subscription-service/internal/http/router"
	services "github.com/magabrotheeeer/subscription-service/internal/services/account"
	"github.com/magabrotheeeer/subscription-service/internal/storage/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := services.NewAccountService(memory.New(), nil, nil, logger)
	srv := httptest.NewServer(router.New(logger, svc, middlewarectx.NewMetrics(prometheus.NewRegistry())))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestRouter_Scenario(t *testing.T) {
	srv := newTestServer(t)

	status, body := do(t, srv, http.MethodPost, "/api/auth/create-account",
		map[string]any{"email": "a@b.com", "password": "secret1", "subscriptionDays": 7})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(7), body["daysRemaining"])
	assert.Equal(t, "Account created successfully", body["message"])
	userID, _ := body["userId"].(string)
	require.NotEmpty(t, userID)

	status, body = do(t, srv, http.MethodPost, "/api/create-account",
		map[string]any{"email": "a@b.com", "password": "secret1"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["success"])

	status, body = do(t, srv, http.MethodPost, "/api/subscription/extend",
		map[string]any{"userId": userID, "additionalDays": 30})
	require.Equal(t, http.StatusOK, status)
	assert.InDelta(t, 37, body["daysRemaining"], 1)

	status, body = do(t, srv, http.MethodGet, "/api/subscription/"+userID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "active", body["status"])
	assert.Equal(t, "a@b.com", body["email"])
	assert.NotEmpty(t, body["createdAt"])

	status, body = do(t, srv, http.MethodGet, "/api/subscription?userId="+userID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, userID, body["userId"])

	status, body = do(t, srv, http.MethodPost, "/api/login", map[string]any{"email": "a@b.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, userID, body["userId"])
	assert.Equal(t, "active", body["status"])
}

func TestRouter_Failures(t *testing.T) {
	srv := newTestServer(t)

	status, _ := do(t, srv, http.MethodPost, "/api/auth/create-account",
		map[string]any{"email": "known@b.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, status)

	tests := []struct {
		name        string
		method      string
		path        string
		body        any
		wantStatus  int
		wantMessage string
	}{
		{"short password", http.MethodPost, "/api/auth/create-account", map[string]any{"email": "x@b.com", "password": "abc"}, http.StatusBadRequest, "Password must be at least 6 characters"},
		{"bad email", http.MethodPost, "/api/create-account", map[string]any{"email": "nope", "password": "secret1"}, http.StatusBadRequest, "Invalid email format"},
		{"wrong password", http.MethodPost, "/api/auth/login", map[string]any{"email": "known@b.com", "password": "badpass"}, http.StatusUnauthorized, "Invalid credentials"},
		{"unknown email", http.MethodPost, "/api/auth/login", map[string]any{"email": "ghost@b.com", "password": "secret1"}, http.StatusUnauthorized, "Invalid credentials"},
		{"unknown user", http.MethodGet, "/api/subscription/ghost", nil, http.StatusNotFound, "User not found"},
		{"missing user id", http.MethodGet, "/api/subscription", nil, http.StatusBadRequest, "User ID is required"},
		{"extend unknown user", http.MethodPost, "/api/subscription/extend", map[string]any{"userId": "ghost"}, http.StatusNotFound, "User not found"},
		{"get on create", http.MethodGet, "/api/auth/create-account", nil, http.StatusMethodNotAllowed, "Method not allowed"},
		{"delete on login", http.MethodDelete, "/api/login", nil, http.StatusMethodNotAllowed, "Method not allowed"},
		{"put on health", http.MethodPut, "/health", nil, http.StatusMethodNotAllowed, "Method not allowed"},
		{"unknown route", http.MethodGet, "/api/unknown", nil, http.StatusNotFound, "Not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, srv, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.NotContains(t, body, "error")
		})
	}
}

func TestRouter_OptionsAndHealth(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/auth/create-account", "/api/login", "/api/subscription/abc", "/api/subscription/extend", "/health"} {
		req, err := http.NewRequest(http.MethodOptions, srv.URL+path, nil)
		require.NoError(t, err)
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	status, body := do(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"status": "Server is running"}, body)
}

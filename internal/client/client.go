// Package client реализует HTTP-клиент API аккаунтов. Клиент удовлетворяет тому же
// интерфейсу, что и локальный сервис, поэтому обработчики могут проксировать
// операции во внешний API без изменений.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/magabrotheeeer/subscription-service/internal/http/response"
	"github.com/magabrotheeeer/subscription-service/internal/models"
	services "github.com/magabrotheeeer/subscription-service/internal/services/account"
)

const defaultTimeout = 10 * time.Second

// Client - клиент API аккаунтов.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// New создаёт клиент для API по адресу apiURL. httpClient может быть nil.
func New(apiURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		apiURL:     strings.TrimRight(apiURL, "/"),
		httpClient: httpClient,
	}
}

type registerRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	SubscriptionDays *int   `json:"subscriptionDays,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type extendRequest struct {
	UserID         string `json:"userId"`
	AdditionalDays *int   `json:"additionalDays,omitempty"`
}

// Register создаёт аккаунт через API.
func (c *Client) Register(ctx context.Context, in services.RegisterInput) (*services.Registered, error) {
	const op = "client.Register"

	var resp response.RegisterResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/create-account", registerRequest{
		Email:            in.Email,
		Password:         in.Password,
		SubscriptionDays: in.SubscriptionDays,
	}, http.StatusCreated, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exp, err := response.ParseTime(resp.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &services.Registered{
		UserID:        resp.UserID,
		Email:         resp.Email,
		DaysRemaining: resp.DaysRemaining,
		ExpiryDate:    exp,
	}, nil
}

// Login проверяет учётные данные через API.
func (c *Client) Login(ctx context.Context, in services.LoginInput) (*services.LoggedIn, error) {
	const op = "client.Login"

	var resp response.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest(in), http.StatusOK, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exp, err := response.ParseTime(resp.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &services.LoggedIn{
		UserID:        resp.UserID,
		Email:         resp.Email,
		DaysRemaining: resp.DaysRemaining,
		ExpiryDate:    exp,
		Status:        models.Status(resp.Status),
	}, nil
}

// Subscription запрашивает состояние подписки через API.
func (c *Client) Subscription(ctx context.Context, userID string) (*services.SubscriptionInfo, error) {
	const op = "client.Subscription"

	path := "/api/subscription"
	if userID != "" {
		path += "/" + url.PathEscape(userID)
	}

	var resp response.SubscriptionResponse
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exp, err := response.ParseTime(resp.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	created, err := response.ParseTime(resp.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &services.SubscriptionInfo{
		UserID:        resp.UserID,
		Email:         resp.Email,
		DaysRemaining: resp.DaysRemaining,
		ExpiryDate:    exp,
		Status:        models.Status(resp.Status),
		CreatedAt:     created,
	}, nil
}

// Extend продлевает подписку через API.
func (c *Client) Extend(ctx context.Context, in services.ExtendInput) (*services.Extended, error) {
	const op = "client.Extend"

	var resp response.ExtendResponse
	err := c.do(ctx, http.MethodPost, "/api/subscription/extend", extendRequest(in), http.StatusOK, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exp, err := response.ParseTime(resp.NewExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &services.Extended{
		UserID:        resp.UserID,
		NewExpiryDate: exp,
		DaysRemaining: resp.DaysRemaining,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, result any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != wantStatus {
		return statusError(resp.StatusCode, raw)
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError восстанавливает ошибку сервиса по коду ответа API.
func statusError(status int, raw []byte) error {
	var body response.ErrorResponse
	_ = json.Unmarshal(raw, &body)

	switch status {
	case http.StatusBadRequest:
		msg := body.Message
		if msg == "" {
			msg = http.StatusText(status)
		}
		return &services.ValidationError{Message: msg}
	case http.StatusUnauthorized:
		return services.ErrInvalidCredentials
	case http.StatusNotFound:
		return services.ErrAccountNotFound
	case http.StatusConflict:
		return services.ErrEmailTaken
	}

	detail := body.Message
	if body.Error != "" {
		detail += ": " + body.Error
	}
	if detail == "" {
		detail = http.StatusText(status)
	}
	return fmt.Errorf("unexpected status %d: %s", status, detail)
}

// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков: тела успешных ответов
// каждой операции и конверт ошибки {success:false, message, error?}.
package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/magabrotheeeer/subscription-service/internal/lib/expiry"
	services "github.com/magabrotheeeer/subscription-service/internal/services/account"
)

// Сообщения ответов.
const (
	MsgAccountCreated   = "Account created successfully"
	MsgMethodNotAllowed = "Method not allowed"
	MsgNotFound         = "Not found"
	MsgInvalidBody      = "invalid request body"
	MsgServerRunning    = "Server is running"

	MsgCreateFailed = "Error creating account"
	MsgLoginFailed  = "Error during login"
	MsgFetchFailed  = "Error fetching subscription"
	MsgExtendFailed = "Error extending subscription"
)

// ErrorResponse - тело ответа с ошибкой.
// Поле Error заполняется только для внутренних ошибок сервера.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Invalid credentials"`
	Error   string `json:"error,omitempty"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Message: msg}
}

// Internal возвращает ErrorResponse для внутренней ошибки с текстом причины.
func Internal(msg string, err error) ErrorResponse {
	resp := ErrorResponse{Message: msg}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// FromError сопоставляет ошибку сервиса HTTP-статусу и телу ответа.
// internalMsg используется как сообщение для всех неизвестных ошибок.
func FromError(err error, internalMsg string) (int, ErrorResponse) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, Error(verr.Message)
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, Error(err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict, Error("Email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, Error("Invalid credentials")
	case errors.Is(err, services.ErrAccountNotFound):
		return http.StatusNotFound, Error("User not found")
	default:
		return http.StatusInternalServerError, Internal(internalMsg, err)
	}
}

// RegisterResponse - тело успешной регистрации.
type RegisterResponse struct {
	Success       bool   `json:"success" example:"true"`
	UserID        string `json:"userId" example:"4f9d2a8e-6c1b-4d5e-9a7f-2b3c4d5e6f70"`
	Email         string `json:"email" example:"a@b.com"`
	DaysRemaining int    `json:"daysRemaining" example:"30"`
	ExpiryDate    string `json:"expiryDate" example:"2025-04-09T12:00:00.000Z"`
	Message       string `json:"message" example:"Account created successfully"`
}

// NewRegisterResponse формирует ответ регистрации.
func NewRegisterResponse(res *services.Registered) RegisterResponse {
	return RegisterResponse{
		Success:       true,
		UserID:        res.UserID,
		Email:         res.Email,
		DaysRemaining: res.DaysRemaining,
		ExpiryDate:    expiry.Format(res.ExpiryDate),
		Message:       MsgAccountCreated,
	}
}

// LoginResponse - тело успешного входа.
type LoginResponse struct {
	Success       bool   `json:"success" example:"true"`
	UserID        string `json:"userId"`
	Email         string `json:"email"`
	DaysRemaining int    `json:"daysRemaining" example:"12"`
	ExpiryDate    string `json:"expiryDate"`
	Status        string `json:"status" example:"active"`
}

// NewLoginResponse формирует ответ входа.
func NewLoginResponse(res *services.LoggedIn) LoginResponse {
	return LoginResponse{
		Success:       true,
		UserID:        res.UserID,
		Email:         res.Email,
		DaysRemaining: res.DaysRemaining,
		ExpiryDate:    expiry.Format(res.ExpiryDate),
		Status:        string(res.Status),
	}
}

// SubscriptionResponse - тело ответа о состоянии подписки.
type SubscriptionResponse struct {
	Success       bool   `json:"success" example:"true"`
	UserID        string `json:"userId"`
	Email         string `json:"email"`
	DaysRemaining int    `json:"daysRemaining" example:"0"`
	ExpiryDate    string `json:"expiryDate"`
	Status        string `json:"status" example:"expired"`
	CreatedAt     string `json:"createdAt"`
}

// NewSubscriptionResponse формирует ответ о состоянии подписки.
func NewSubscriptionResponse(res *services.SubscriptionInfo) SubscriptionResponse {
	return SubscriptionResponse{
		Success:       true,
		UserID:        res.UserID,
		Email:         res.Email,
		DaysRemaining: res.DaysRemaining,
		ExpiryDate:    expiry.Format(res.ExpiryDate),
		Status:        string(res.Status),
		CreatedAt:     expiry.Format(res.CreatedAt),
	}
}

// ExtendResponse - тело ответа о продлении подписки.
type ExtendResponse struct {
	Success       bool   `json:"success" example:"true"`
	UserID        string `json:"userId"`
	NewExpiryDate string `json:"newExpiryDate"`
	DaysRemaining int    `json:"daysRemaining" example:"37"`
}

// NewExtendResponse формирует ответ о продлении.
func NewExtendResponse(res *services.Extended) ExtendResponse {
	return ExtendResponse{
		Success:       true,
		UserID:        res.UserID,
		NewExpiryDate: expiry.Format(res.NewExpiryDate),
		DaysRemaining: res.DaysRemaining,
	}
}

// HealthResponse - тело ответа проверки состояния.
type HealthResponse struct {
	Status string `json:"status" example:"Server is running"`
}

// ParseTime разбирает дату из тела ответа, возвращая нулевое время для пустой строки.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return expiry.Parse(s)
}

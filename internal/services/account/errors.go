package services

import "errors"

var (
	// ErrInvalidInput - родительская ошибка для всех ошибок валидации входных данных.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailTaken - email уже занят другим аккаунтом.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials - неизвестный email или неверный пароль. Причина не уточняется.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountNotFound - аккаунт с указанным идентификатором не найден.
	ErrAccountNotFound = errors.New("user not found")
)

// ValidationError описывает некорректный ввод клиента. Message показывается пользователю как есть.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap позволяет сопоставлять ошибку с ErrInvalidInput через errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

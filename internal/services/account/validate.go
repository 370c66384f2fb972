package services

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator"
)

// MaxDays - верхняя граница длительности подписки и продления.
const MaxDays = 36500

// Сообщения об ошибках валидации.
const (
	MsgCredentialsRequired = "Email and password are required"
	MsgInvalidEmail        = "Invalid email format"
	MsgPasswordTooShort    = "Password must be at least 6 characters"
	MsgPasswordTooLong     = "Password must be at most 72 bytes"
	MsgUserIDRequired      = "User ID is required"
	MsgSubscriptionDays    = "subscriptionDays must be between 1 and 36500"
	MsgAdditionalDays      = "additionalDays must be between 1 and 36500"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterInput - входные данные регистрации.
type RegisterInput struct {
	Email            string `json:"email" validate:"required,emailshape"`
	Password         string `json:"password" validate:"required,min=6"`
	SubscriptionDays *int   `json:"subscriptionDays,omitempty" validate:"omitempty,min=1,max=36500"`
}

// LoginInput - входные данные для входа.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ExtendInput - входные данные продления подписки.
type ExtendInput struct {
	UserID         string `json:"userId" validate:"required"`
	AdditionalDays *int   `json:"additionalDays,omitempty" validate:"omitempty,min=1,max=36500"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// validationMessage превращает ошибки валидатора в одно сообщение для клиента.
// Отсутствие обязательных полей сообщается раньше ошибок формата.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err.Error()
	}

	for _, fe := range errs {
		if fe.Tag() == "required" {
			return fieldMessage(fe)
		}
	}
	return fieldMessage(errs[0])
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Email":
		if fe.Tag() == "required" {
			return MsgCredentialsRequired
		}
		return MsgInvalidEmail
	case "Password":
		if fe.Tag() == "required" {
			return MsgCredentialsRequired
		}
		return MsgPasswordTooShort
	case "UserID":
		return MsgUserIDRequired
	case "SubscriptionDays":
		return MsgSubscriptionDays
	case "AdditionalDays":
		return MsgAdditionalDays
	default:
		return "field " + fe.Field() + " is not valid"
	}
}

// Package models содержит доменную модель аккаунта подписки и производные от неё структуры,
// используемые в бизнес‑логике, хранилищах и кэше.
package models

import "time"

// Status - производный статус подписки. Никогда не хранится, всегда вычисляется по дате истечения.
type Status string

const (
	// StatusActive - до истечения подписки остался хотя бы один день.
	StatusActive Status = "active"
	// StatusExpired - подписка истекла.
	StatusExpired Status = "expired"
)

// DefaultSubscriptionDays - длительность подписки и продления по умолчанию.
const DefaultSubscriptionDays = 30

// Account представляет зарегистрированного пользователя и его подписку.
type Account struct {
	UserID           string    // Уникальный идентификатор, назначается хранилищем
	Email            string    // Электронная почта, уникальна; сравнивается с учётом регистра
	PasswordHash     string    // bcrypt-хэш пароля
	SubscriptionDays int       // Исходная длительность подписки в днях
	ExpiryDate       time.Time // Дата истечения подписки
	CreatedAt        time.Time // Дата создания аккаунта
}

// Subscription - публичный снимок аккаунта без учётных данных.
// Именно он кладётся в кэш.
type Subscription struct {
	UserID           string    `json:"user_id"`
	Email            string    `json:"email"`
	SubscriptionDays int       `json:"subscription_days"`
	ExpiryDate       time.Time `json:"expiry_date"`
	CreatedAt        time.Time `json:"created_at"`
}

// Subscription возвращает публичный снимок аккаунта.
func (a *Account) Subscription() Subscription {
	return Subscription{
		UserID:           a.UserID,
		Email:            a.Email,
		SubscriptionDays: a.SubscriptionDays,
		ExpiryDate:       a.ExpiryDate,
		CreatedAt:        a.CreatedAt,
	}
}

// Package events публикует события жизненного цикла аккаунтов в RabbitMQ.
package events

import (
	"context"
	"time"
)

// Ключи маршрутизации событий.
const (
	RoutingAccountCreated       = "account.created"
	RoutingSubscriptionExtended = "subscription.extended"
)

// AccountCreated публикуется после успешной регистрации.
type AccountCreated struct {
	UserID           string    `json:"user_id"`
	Email            string    `json:"email"`
	SubscriptionDays int       `json:"subscription_days"`
	ExpiryDate       time.Time `json:"expiry_date"`
	CreatedAt        time.Time `json:"created_at"`
}

// SubscriptionExtended публикуется после продления подписки.
type SubscriptionExtended struct {
	UserID         string    `json:"user_id"`
	AdditionalDays int       `json:"additional_days"`
	NewExpiryDate  time.Time `json:"new_expiry_date"`
}

// Noop - издатель, который отбрасывает события. Используется, когда RabbitMQ не настроен.
type Noop struct{}

// Publish ничего не делает.
func (Noop) Publish(context.Context, string, any) error { return nil }

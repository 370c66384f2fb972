// Package expiry содержит арифметику дат истечения подписки.
package expiry

import (
	"time"

	"github.com/magabrotheeeer/subscription-service/internal/models"
)

// ISOLayout - формат дат в ответах API (ISO-8601, UTC, миллисекунды).
const ISOLayout = "2006-01-02T15:04:05.000Z"

const day = 24 * time.Hour

// DaysRemaining возвращает количество дней до истечения, округлённое вверх.
// Результат никогда не бывает отрицательным.
func DaysRemaining(expiryDate, now time.Time) int {
	left := expiryDate.Sub(now)
	if left <= 0 {
		return 0
	}
	days := int(left / day)
	if left%day != 0 {
		days++
	}
	return days
}

// StatusOf возвращает статус подписки по количеству оставшихся дней.
func StatusOf(daysRemaining int) models.Status {
	if daysRemaining > 0 {
		return models.StatusActive
	}
	return models.StatusExpired
}

// AddDays прибавляет календарные дни в часовом поясе loc.
// При переходе на летнее время сутки могут длиться 23 или 25 часов, время суток при этом сохраняется.
func AddDays(t time.Time, days int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).AddDate(0, 0, days)
}

// Format форматирует дату для ответа API.
func Format(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// Parse разбирает дату из ответа API. Принимает любой RFC 3339.
func Parse(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

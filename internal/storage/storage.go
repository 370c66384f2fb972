// Package storage объединяет общие для всех хранилищ аккаунтов ошибки.
// Реализации находятся в подпакетах memory и postgres.
package storage

import "errors"

var (
	// ErrAccountNotFound возвращается, если аккаунт с указанным идентификатором или email отсутствует.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailTaken возвращается при попытке создать второй аккаунт с тем же email.
	ErrEmailTaken = errors.New("email already registered")
)

// Package password реализует хеширование и проверку паролей аккаунтов.
//
// GetHash создает bcrypt-хеш пароля для хранения в аккаунте.
// CompareHash сравнивает сохранённый хеш с введённым паролем.
package password

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength - максимальная длина пароля в байтах, которую учитывает bcrypt.
const MaxLength = 72

// ErrTooLong возвращается, если пароль длиннее MaxLength байт.
var ErrTooLong = errors.New("password is too long")

var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("subscription-service-dummy"), bcrypt.DefaultCost)
	return h
})

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	if len(password) > MaxLength {
		return "", fmt.Errorf("%s: %w", op, ErrTooLong)
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе - ошибку.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Verify сообщает, соответствует ли пароль сохранённому хэшу.
func Verify(storedHash, suppliedPassword string) bool {
	return CompareHash(storedHash, suppliedPassword) == nil
}

// CompareDummy выполняет сравнение с заранее вычисленным хэшем,
// чтобы вход с несуществующим email занимал столько же времени, сколько вход с неверным паролем.
func CompareDummy(suppliedPassword string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(suppliedPassword))
}

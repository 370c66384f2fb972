// Package memory реализует хранилище аккаунтов в памяти процесса.
// Данные не переживают перезапуск и не разделяются между экземплярами сервиса.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/subscription-service/internal/models"
	"github.com/magabrotheeeer/subscription-service/internal/storage"
)

// Storage хранит аккаунты в map под мьютексом.
// Проверка уникальности email и вставка, а также чтение и запись даты истечения
// выполняются под одной блокировкой.
type Storage struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
	byEmail  map[string]string
	newID    func() string
}

// New создаёт пустое хранилище.
func New() *Storage {
	return &Storage{
		accounts: make(map[string]*models.Account),
		byEmail:  make(map[string]string),
		newID:    uuid.NewString,
	}
}

// CreateAccount назначает аккаунту новый идентификатор и сохраняет его.
func (s *Storage) CreateAccount(ctx context.Context, account models.Account) (*models.Account, error) {
	const op = "storage.memory.CreateAccount"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[account.Email]; ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEmailTaken)
	}

	id := s.newID()
	for s.accounts[id] != nil {
		id = s.newID()
	}

	account.UserID = id
	stored := account
	s.accounts[id] = &stored
	s.byEmail[account.Email] = id

	return &account, nil
}

// GetAccountByID возвращает копию аккаунта по идентификатору.
func (s *Storage) GetAccountByID(ctx context.Context, userID string) (*models.Account, error) {
	const op = "storage.memory.GetAccountByID"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAccountNotFound)
	}
	out := *acc
	return &out, nil
}

// GetAccountByEmail возвращает копию аккаунта по email (точное совпадение).
func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	const op = "storage.memory.GetAccountByEmail"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAccountNotFound)
	}
	out := *s.accounts[id]
	return &out, nil
}

// ExtendExpiry заменяет дату истечения результатом extend от текущей даты
// и возвращает новую дату.
func (s *Storage) ExtendExpiry(ctx context.Context, userID string, extend func(time.Time) time.Time) (time.Time, error) {
	const op = "storage.memory.ExtendExpiry"
	if err := ctx.Err(); err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return time.Time{}, fmt.Errorf("%s: %w", op, storage.ErrAccountNotFound)
	}
	acc.ExpiryDate = extend(acc.ExpiryDate)
	return acc.ExpiryDate, nil
}

// Len возвращает количество аккаунтов.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

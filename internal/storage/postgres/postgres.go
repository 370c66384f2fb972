// Package postgres реализует хранилище аккаунтов на основе PostgreSQL.
//
// Уникальность email обеспечивается ограничением accounts_email_key,
// продление подписки выполняется в транзакции с блокировкой строки.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/subscription-service/internal/models"
	"github.com/magabrotheeeer/subscription-service/internal/storage"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New открывает подключение к PostgreSQL и проверяет его.
func New(ctx context.Context, storageConnectionString string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// CreateAccount вставляет аккаунт с новым идентификатором.
func (s *Storage) CreateAccount(ctx context.Context, account models.Account) (*models.Account, error) {
	const op = "storage.postgres.CreateAccount"

	account.UserID = uuid.NewString()
	query := `INSERT INTO accounts (uid, email, password_hash, subscription_days, expiry_date, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := s.DB.ExecContext(ctx, query,
		account.UserID, account.Email, account.PasswordHash,
		account.SubscriptionDays, account.ExpiryDate, account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == "accounts_email_key" {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEmailTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &account, nil
}

// GetAccountByID возвращает аккаунт по идентификатору.
func (s *Storage) GetAccountByID(ctx context.Context, userID string) (*models.Account, error) {
	const op = "storage.postgres.GetAccountByID"

	query := `SELECT uid, email, password_hash, subscription_days, expiry_date, created_at
			  FROM accounts
			  WHERE uid = $1`
	acc, err := scanAccount(s.DB.QueryRowContext(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return acc, nil
}

// GetAccountByEmail возвращает аккаунт по email (точное совпадение).
func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	const op = "storage.postgres.GetAccountByEmail"

	query := `SELECT uid, email, password_hash, subscription_days, expiry_date, created_at
			  FROM accounts
			  WHERE email = $1`
	acc, err := scanAccount(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return acc, nil
}

// ExtendExpiry блокирует строку аккаунта, вычисляет новую дату истечения через extend
// и сохраняет её в той же транзакции.
func (s *Storage) ExtendExpiry(ctx context.Context, userID string, extend func(time.Time) time.Time) (time.Time, error) {
	const op = "storage.postgres.ExtendExpiry"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var current time.Time
	err = tx.QueryRowContext(ctx, `SELECT expiry_date FROM accounts WHERE uid = $1 FOR UPDATE`, userID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, fmt.Errorf("%s: %w", op, storage.ErrAccountNotFound)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	next := extend(current)
	if _, err = tx.ExecContext(ctx, `UPDATE accounts SET expiry_date = $1 WHERE uid = $2`, next, userID); err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	if err = tx.Commit(); err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return next, nil
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	var acc models.Account
	err := row.Scan(&acc.UserID, &acc.Email, &acc.PasswordHash,
		&acc.SubscriptionDays, &acc.ExpiryDate, &acc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

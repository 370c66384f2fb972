// Package services содержит бизнес-логику аккаунтов: регистрацию, вход,
// запрос и продление подписки.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/subscription-service/internal/cache"
	"github.com/magabrotheeeer/subscription-service/internal/events"
	"github.com/magabrotheeeer/subscription-service/internal/lib/expiry"
	"github.com/magabrotheeeer/subscription-service/internal/lib/password"
	"github.com/magabrotheeeer/subscription-service/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-service/internal/models"
	"github.com/magabrotheeeer/subscription-service/internal/storage"
)

// AccountRepository описывает контракт хранилища аккаунтов.
type AccountRepository interface {
	// CreateAccount назначает идентификатор и сохраняет аккаунт.
	// Возвращает storage.ErrEmailTaken, если email уже занят.
	CreateAccount(ctx context.Context, account models.Account) (*models.Account, error)
	// GetAccountByID возвращает аккаунт или storage.ErrAccountNotFound.
	GetAccountByID(ctx context.Context, userID string) (*models.Account, error)
	// GetAccountByEmail возвращает аккаунт или storage.ErrAccountNotFound.
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	// ExtendExpiry атомарно заменяет дату истечения результатом extend.
	ExtendExpiry(ctx context.Context, userID string, extend func(time.Time) time.Time) (time.Time, error)
}

// Cache описывает методы для кэширования снимков подписок.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Publisher публикует события жизненного цикла аккаунтов.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Registered - результат регистрации.
type Registered struct {
	UserID        string
	Email         string
	DaysRemaining int
	ExpiryDate    time.Time
}

// LoggedIn - результат успешного входа.
type LoggedIn struct {
	UserID        string
	Email         string
	DaysRemaining int
	ExpiryDate    time.Time
	Status        models.Status
}

// SubscriptionInfo - состояние подписки пользователя.
type SubscriptionInfo struct {
	UserID        string
	Email         string
	DaysRemaining int
	ExpiryDate    time.Time
	Status        models.Status
	CreatedAt     time.Time
}

// Extended - результат продления подписки.
type Extended struct {
	UserID        string
	NewExpiryDate time.Time
	DaysRemaining int
}

// AccountService реализует бизнес-логику аккаунтов поверх хранилища, кэша и издателя событий.
type AccountService struct {
	repo      AccountRepository
	cache     Cache
	publisher Publisher
	log       *slog.Logger
	validate  *validator.Validate
	loc       *time.Location
	now       func() time.Time
	cacheTTL  time.Duration
	locks     userLocks
}

// Option настраивает AccountService.
type Option func(*AccountService)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *AccountService) { s.now = now }
}

// WithLocation задаёт часовой пояс календарной арифметики.
func WithLocation(loc *time.Location) Option {
	return func(s *AccountService) { s.loc = loc }
}

// WithCacheTTL задаёт время жизни снимков подписок в кэше.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *AccountService) { s.cacheTTL = ttl }
}

// NewAccountService создает новый экземпляр AccountService.
// nil в качестве cache или publisher заменяется заглушкой.
func NewAccountService(repo AccountRepository, c Cache, publisher Publisher, log *slog.Logger, opts ...Option) *AccountService {
	if c == nil {
		c = cache.Noop{}
	}
	if publisher == nil {
		publisher = events.Noop{}
	}
	s := &AccountService{
		repo:      repo,
		cache:     c,
		publisher: publisher,
		log:       log,
		validate:  newValidator(),
		loc:       time.Local,
		now:       time.Now,
		cacheTTL:  10 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register проверяет ввод, создаёт аккаунт и возвращает его публичные поля.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*Registered, error) {
	const op = "services.account.Register"

	if err := s.validate.Struct(in); err != nil {
		return nil, invalid(validationMessage(err))
	}

	days := models.DefaultSubscriptionDays
	if in.SubscriptionDays != nil {
		days = *in.SubscriptionDays
	}

	hash, err := password.GetHash(in.Password)
	if errors.Is(err, password.ErrTooLong) {
		return nil, invalid(MsgPasswordTooLong)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	created, err := s.repo.CreateAccount(ctx, models.Account{
		Email:            in.Email,
		PasswordHash:     hash,
		SubscriptionDays: days,
		CreatedAt:        now,
		ExpiryDate:       expiry.AddDays(now, days, s.loc),
	})
	if errors.Is(err, storage.ErrEmailTaken) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("account created", sl.UserID(created.UserID), slog.Int("subscription_days", days))
	s.publish(ctx, events.RoutingAccountCreated, events.AccountCreated{
		UserID:           created.UserID,
		Email:            created.Email,
		SubscriptionDays: created.SubscriptionDays,
		ExpiryDate:       created.ExpiryDate,
		CreatedAt:        created.CreatedAt,
	})

	return &Registered{
		UserID:        created.UserID,
		Email:         created.Email,
		DaysRemaining: expiry.DaysRemaining(created.ExpiryDate, now),
		ExpiryDate:    created.ExpiryDate,
	}, nil
}

// Login проверяет учётные данные. Неизвестный email и неверный пароль
// дают одну и ту же ошибку ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, in LoginInput) (*LoggedIn, error) {
	const op = "services.account.Login"

	if err := s.validate.Struct(in); err != nil {
		return nil, invalid(validationMessage(err))
	}

	acc, err := s.repo.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, storage.ErrAccountNotFound) {
		password.CompareDummy(in.Password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !password.Verify(acc.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}

	days := expiry.DaysRemaining(acc.ExpiryDate, s.now())
	return &LoggedIn{
		UserID:        acc.UserID,
		Email:         acc.Email,
		DaysRemaining: days,
		ExpiryDate:    acc.ExpiryDate,
		Status:        expiry.StatusOf(days),
	}, nil
}

// Subscription возвращает состояние подписки пользователя, используя кэш, если он доступен.
func (s *AccountService) Subscription(ctx context.Context, userID string) (*SubscriptionInfo, error) {
	const op = "services.account.Subscription"

	if userID == "" {
		return nil, invalid(MsgUserIDRequired)
	}

	sub, err := s.snapshot(ctx, userID)
	if errors.Is(err, storage.ErrAccountNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	days := expiry.DaysRemaining(sub.ExpiryDate, s.now())
	return &SubscriptionInfo{
		UserID:        sub.UserID,
		Email:         sub.Email,
		DaysRemaining: days,
		ExpiryDate:    sub.ExpiryDate,
		Status:        expiry.StatusOf(days),
		CreatedAt:     sub.CreatedAt,
	}, nil
}

// Extend продлевает подписку на указанное число календарных дней от текущей даты истечения.
func (s *AccountService) Extend(ctx context.Context, in ExtendInput) (*Extended, error) {
	const op = "services.account.Extend"

	if err := s.validate.Struct(in); err != nil {
		return nil, invalid(validationMessage(err))
	}

	days := models.DefaultSubscriptionDays
	if in.AdditionalDays != nil {
		days = *in.AdditionalDays
	}

	newExpiry, err := s.extendExpiry(ctx, in.UserID, days)
	if errors.Is(err, storage.ErrAccountNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("subscription extended", sl.UserID(in.UserID), slog.Int("additional_days", days))
	s.publish(ctx, events.RoutingSubscriptionExtended, events.SubscriptionExtended{
		UserID:         in.UserID,
		AdditionalDays: days,
		NewExpiryDate:  newExpiry,
	})

	return &Extended{
		UserID:        in.UserID,
		NewExpiryDate: newExpiry,
		DaysRemaining: expiry.DaysRemaining(newExpiry, s.now()),
	}, nil
}

// extendExpiry меняет дату истечения и сбрасывает кэш под блокировкой пользователя,
// чтобы параллельное чтение не вернуло в кэш старую дату.
func (s *AccountService) extendExpiry(ctx context.Context, userID string, days int) (time.Time, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	newExpiry, err := s.repo.ExtendExpiry(ctx, userID, func(current time.Time) time.Time {
		return expiry.AddDays(current, days, s.loc)
	})
	if err != nil {
		return time.Time{}, err
	}

	key := cache.SubscriptionKey(userID)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.log.Warn("failed to invalidate subscription cache", slog.String("key", key), sl.Err(err))
	}
	return newExpiry, nil
}

func (s *AccountService) snapshot(ctx context.Context, userID string) (*models.Subscription, error) {
	key := cache.SubscriptionKey(userID)

	var cached models.Subscription
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read subscription from cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	acc, err := s.repo.GetAccountByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sub := acc.Subscription()
	if err := s.cache.Set(ctx, key, sub, s.cacheTTL); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", key), sl.Err(err))
	}
	return &sub, nil
}

func (s *AccountService) publish(ctx context.Context, routingKey string, message any) {
	if err := s.publisher.Publish(ctx, routingKey, message); err != nil {
		s.log.Warn("failed to publish event", slog.String("routing_key", routingKey), sl.Err(err))
	}
}

// Package backend собирает реализацию операций с аккаунтами по конфигурации:
// локальный сервис со своим хранилищем, кэшем и событиями либо клиент внешнего API.
package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/subscription-service/internal/cache"
	"github.com/magabrotheeeer/subscription-service/internal/client"
	"github.com/magabrotheeeer/subscription-service/internal/config"
	"github.com/magabrotheeeer/subscription-service/internal/events"
	"github.com/magabrotheeeer/subscription-service/internal/http/router"
	"github.com/magabrotheeeer/subscription-service/internal/migrations"
	services "github.com/magabrotheeeer/subscription-service/internal/services/account"
	"github.com/magabrotheeeer/subscription-service/internal/storage/memory"
	"github.com/magabrotheeeer/subscription-service/internal/storage/postgres"
)

// Backend владеет сервисом и ресурсами, которые нужно закрыть при остановке.
type Backend struct {
	Service router.Service
	closers []func() error
}

// Build создаёт Backend. При ошибке уже открытые ресурсы закрываются.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	const op = "backend.Build"

	if cfg.Mode == config.BackendRemote {
		logger.Info("forwarding account operations", slog.String("api_url", cfg.APIURL))
		return &Backend{
			Service: client.New(cfg.APIURL, &http.Client{Timeout: cfg.TimeoutHTTP}),
		}, nil
	}

	b := &Backend{}
	svc, err := b.local(ctx, cfg, logger)
	if err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	b.Service = svc
	return b, nil
}

func (b *Backend) local(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*services.AccountService, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	var repo services.AccountRepository
	switch cfg.Driver {
	case config.StoragePostgres:
		db, err := postgres.New(ctx, cfg.StorageConnectionString)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, db.Close)
		if err := migrations.Run(db.DB); err != nil {
			return nil, err
		}
		repo = db
	default:
		repo = memory.New()
	}
	logger.Info("account storage ready", slog.String("driver", cfg.Driver))

	var subscriptionCache services.Cache
	if cfg.AddressRedis != "" {
		redisCache, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, redisCache.Close)
		subscriptionCache = redisCache
		logger.Info("subscription cache enabled", slog.String("addr", cfg.AddressRedis))
	}

	var publisher services.Publisher
	if cfg.URLRabbitMQ != "" {
		conn, err := events.Connect(cfg.URLRabbitMQ, cfg.Retries, cfg.RetryDelay)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, conn.Close)
		pub, err := events.NewPublisher(conn, cfg.Exchange)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, pub.Close)
		publisher = pub
		logger.Info("account events enabled", slog.String("exchange", cfg.Exchange))
	}

	return services.NewAccountService(repo, subscriptionCache, publisher, logger,
		services.WithLocation(loc),
		services.WithCacheTTL(cfg.CacheTTL),
	), nil
}

// Close освобождает ресурсы в порядке, обратном открытию.
func (b *Backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}

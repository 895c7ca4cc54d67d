package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gametime-api/internal/adapter/memory"
	"github.com/heartmarshall/gametime-api/internal/adapter/postgres"
	pgsubmission "github.com/heartmarshall/gametime-api/internal/adapter/postgres/submission"
	"github.com/heartmarshall/gametime-api/internal/adapter/redis"
	"github.com/heartmarshall/gametime-api/internal/config"
	"github.com/heartmarshall/gametime-api/internal/domain"
	"github.com/heartmarshall/gametime-api/internal/service/submission"
	"github.com/heartmarshall/gametime-api/internal/transport/rest"
	"github.com/heartmarshall/gametime-api/migrations"
)

type submissionStore interface {
	Put(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	QueryByIndex(ctx context.Context, index domain.SubmissionIndex, key string, descending bool) ([]*domain.Submission, error)
	UpdateIfExists(ctx context.Context, id uuid.UUID, patch domain.SubmissionPatch) (*domain.Submission, error)
	DeleteIfExists(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Backend is the constructed submission service together with the
// dependencies the health endpoints check. Close releases every connection.
type Backend struct {
	Service *submission.Service
	Checks  map[string]rest.Pinger

	closers []func()
}

// Close releases the store and cache connections in reverse order of opening.
func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// NewBackend opens the configured store and, when enabled, the Redis stats
// cache, and builds the submission service on top of them.
func NewBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	b := &Backend{Checks: make(map[string]rest.Pinger)}

	store, tx, err := b.openStore(ctx, cfg, logger)
	if err != nil {
		b.Close()
		return nil, err
	}

	var cache *redis.StatsCache
	if cfg.Cache.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Cache)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("connect stats cache: %w", err)
		}
		b.closers = append(b.closers, func() { _ = client.Close() })
		b.Checks["cache"] = rest.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		cache = redis.NewStatsCache(client, cfg.Cache.StatsTTL)
		logger.Info("stats cache enabled",
			slog.String("addr", cfg.Cache.RedisAddr),
			slog.Duration("ttl", cfg.Cache.StatsTTL),
		)
	}

	// A nil *StatsCache must not reach the service as a non-nil interface.
	if cache != nil {
		b.Service = submission.NewService(logger, store, cache, tx)
	} else {
		b.Service = submission.NewService(logger, store, nil, tx)
	}
	return b, nil
}

func (b *Backend) openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (submissionStore, txRunner, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		store := memory.New()
		b.Checks["storage"] = store
		logger.Warn("using in-memory storage, data is lost on restart")
		return store, store, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		b.closers = append(b.closers, pool.Close)
		b.Checks["storage"] = pool

		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
				return nil, nil, fmt.Errorf("migrate database: %w", err)
			}
		}
		return pgsubmission.New(pool), postgres.NewTxManager(pool), nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

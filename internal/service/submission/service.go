package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gametime-api/internal/domain"
)

type submissionRepo interface {
	Put(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	QueryByIndex(ctx context.Context, index domain.SubmissionIndex, key string, descending bool) ([]*domain.Submission, error)
	UpdateIfExists(ctx context.Context, id uuid.UUID, patch domain.SubmissionPatch) (*domain.Submission, error)
	DeleteIfExists(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
}

// statsCache holds computed GameStats keyed by normalized game title.
// Get reports a miss with ok == false and a nil error. Delete advances the
// title's version, and Set must not store stats computed at an older one.
type statsCache interface {
	Get(ctx context.Context, gameTitle string) (stats *domain.GameStats, ok bool, err error)
	Version(ctx context.Context, gameTitle string) (int64, error)
	Set(ctx context.Context, stats *domain.GameStats, version int64) error
	Delete(ctx context.Context, gameTitle string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the submission lifecycle: create, fetch, update,
// delete and per-game statistics.
type Service struct {
	submissions submissionRepo
	cache       statsCache
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new submission service. cache may be nil, in which
// case statistics are always computed from the store.
func NewService(
	log *slog.Logger,
	submissions submissionRepo,
	cache statsCache,
	tx txManager,
) *Service {
	if cache == nil {
		cache = noCache{}
	}
	return &Service{
		submissions: submissions,
		cache:       cache,
		tx:          tx,
		log:         log.With("service", "submission"),
	}
}

// storeError wraps a repository failure. Anything that is not a known
// domain condition is reported as ErrRepositoryUnavailable.
func storeError(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConditionFailed) ||
		errors.Is(err, domain.ErrRepositoryUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrRepositoryUnavailable, op, err)
}

// invalidateStats drops the cached statistics of a game. Cache failures
// never fail the caller.
func (s *Service) invalidateStats(ctx context.Context, gameTitle string) {
	if err := s.cache.Delete(ctx, gameTitle); err != nil {
		s.log.WarnContext(ctx, "stats cache invalidation failed",
			slog.String("game_title", gameTitle),
			slog.String("error", err.Error()),
		)
	}
}

// timestamp returns the current time at the precision the store keeps.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type noCache struct{}

func (noCache) Get(context.Context, string) (*domain.GameStats, bool, error) { return nil, false, nil }
func (noCache) Version(context.Context, string) (int64, error) { return 0, nil }
func (noCache) Set(context.Context, *domain.GameStats, int64) error { return nil }
func (noCache) Delete(context.Context, string) error { return nil }

package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/gametime-api/internal/domain"
)

// GameStats returns aggregated play time for a game. A game without
// submissions yields domain.ErrNotFound and nothing is aggregated.
func (s *Service) GameStats(ctx context.Context, gameTitle string) (*domain.GameStats, error) {
	title := domain.NormalizeText(gameTitle)
	if title == "" {
		return nil, domain.NewValidationError(domain.ErrMissingRequiredField, "gameTitle", "required")
	}

	cached, ok, err := s.cache.Get(ctx, title)
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "stats cache read failed",
			slog.String("game_title", title),
			slog.String("error", err.Error()),
		)
	case ok:
		return cached, nil
	}

	// The version is read before the query so that stats computed from rows
	// older than a concurrent write are never cached.
	version, err := s.cache.Version(ctx, title)
	cacheable := err == nil
	if err != nil {
		s.log.WarnContext(ctx, "stats cache version read failed",
			slog.String("game_title", title),
			slog.String("error", err.Error()),
		)
	}

	subs, err := s.submissions.QueryByIndex(ctx, domain.IndexGame, title, true)
	if err != nil {
		return nil, storeError("query game submissions", err)
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("stats for %q: %w", title, domain.ErrNotFound)
	}

	stats := domain.ComputeGameStats(title, subs)

	if cacheable {
		if err := s.cache.Set(ctx, &stats, version); err != nil {
			s.log.WarnContext(ctx, "stats cache write failed",
				slog.String("game_title", title),
				slog.String("error", err.Error()),
			)
		}
	}

	return &stats, nil
}

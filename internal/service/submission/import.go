package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gametime-api/internal/domain"
)

// Import validates every input and then stores all of them in a single
// transaction. Nothing is written if any input is invalid.
func (s *Service) Import(ctx context.Context, inputs []CreateInput) ([]*domain.Submission, error) {
	subs := make([]*domain.Submission, 0, len(inputs))
	for i, in := range inputs {
		sub, err := in.toSubmission()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		now := timestamp()
		sub.ID = uuid.New()
		sub.CreatedAt = now
		sub.UpdatedAt = now
		subs = append(subs, &sub)
	}
	if len(subs) == 0 {
		return subs, nil
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, sub := range subs {
			if err := s.submissions.Put(ctx, sub); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storeError("import submissions", err)
	}

	titles := make(map[string]struct{})
	for _, sub := range subs {
		if _, seen := titles[sub.GameTitle]; seen {
			continue
		}
		titles[sub.GameTitle] = struct{}{}
		s.invalidateStats(ctx, sub.GameTitle)
	}

	s.log.InfoContext(ctx, "submissions imported",
		slog.Int("count", len(subs)),
		slog.Int("games", len(titles)),
	)

	return subs, nil
}

package submission

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gametime-api/internal/domain"
)

// Create validates input and stores it as a new submission.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Submission, error) {
	sub, err := input.toSubmission()
	if err != nil {
		return nil, err
	}

	now := timestamp()
	sub.ID = uuid.New()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	if err := s.submissions.Put(ctx, &sub); err != nil {
		return nil, storeError("create submission", err)
	}
	s.invalidateStats(ctx, sub.GameTitle)

	s.log.InfoContext(ctx, "submission created",
		slog.String("submission_id", sub.ID.String()),
		slog.String("user_id", sub.UserID),
		slog.String("game_title", sub.GameTitle),
	)

	return &sub, nil
}

package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/gametime-api/internal/domain"
)

// Update applies a partial update to an existing submission and returns the
// updated record. The existence check and the write are one conditional
// store operation.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Submission, error) {
	patch, err := input.toPatch(timestamp())
	if err != nil {
		return nil, err
	}

	updated, err := s.submissions.UpdateIfExists(ctx, input.SubmissionID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrConditionFailed) {
			s.log.DebugContext(ctx, "update target does not exist",
				slog.String("submission_id", input.SubmissionID.String()))
			return nil, fmt.Errorf("update submission %s: %w", input.SubmissionID, domain.ErrNotFound)
		}
		return nil, storeError("update submission", err)
	}
	s.invalidateStats(ctx, updated.GameTitle)

	s.log.InfoContext(ctx, "submission updated",
		slog.String("submission_id", updated.ID.String()),
		slog.String("game_title", updated.GameTitle),
	)

	return updated, nil
}

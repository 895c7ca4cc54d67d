package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gametime-api/internal/domain"
)

// Delete removes a submission and returns its id. Deleting an id that does
// not exist yields domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, input DeleteInput) (uuid.UUID, error) {
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	deleted, err := s.submissions.DeleteIfExists(ctx, input.SubmissionID)
	if err != nil {
		if errors.Is(err, domain.ErrConditionFailed) {
			s.log.DebugContext(ctx, "delete target does not exist",
				slog.String("submission_id", input.SubmissionID.String()))
			return uuid.Nil, fmt.Errorf("delete submission %s: %w", input.SubmissionID, domain.ErrNotFound)
		}
		return uuid.Nil, storeError("delete submission", err)
	}
	s.invalidateStats(ctx, deleted.GameTitle)

	s.log.InfoContext(ctx, "submission deleted",
		slog.String("submission_id", deleted.ID.String()),
		slog.String("game_title", deleted.GameTitle),
	)

	return deleted.ID, nil
}

package submission

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gametime-api/internal/domain"
)

// GetByID returns a single submission. A missing id yields domain.ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError(domain.ErrMissingRequiredField, "submissionId", "required")
	}

	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get submission", err)
	}
	return sub, nil
}

// ListByUser returns a user's submissions, most recent first.
// A user without submissions gets an empty slice.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*domain.Submission, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.NewValidationError(domain.ErrMissingRequiredField, "userId", "required")
	}

	subs, err := s.submissions.QueryByIndex(ctx, domain.IndexUser, userID, true)
	if err != nil {
		return nil, storeError("list submissions by user", err)
	}
	return nonNil(subs), nil
}

// ListByGame returns a game's submissions, most recent first. The title is
// matched after normalization, so case and spacing do not matter.
func (s *Service) ListByGame(ctx context.Context, gameTitle string) ([]*domain.Submission, error) {
	title := domain.NormalizeText(gameTitle)
	if title == "" {
		return nil, domain.NewValidationError(domain.ErrMissingRequiredField, "gameTitle", "required")
	}

	subs, err := s.submissions.QueryByIndex(ctx, domain.IndexGame, title, true)
	if err != nil {
		return nil, storeError("list submissions by game", err)
	}
	return nonNil(subs), nil
}

func nonNil(subs []*domain.Submission) []*domain.Submission {
	if subs == nil {
		return []*domain.Submission{}
	}
	return subs
}

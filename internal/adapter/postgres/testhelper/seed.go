package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/gametime-api/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueTitle returns a normalized game title no other test uses.
func UniqueTitle(prefix string) string {
	return domain.NormalizeText(prefix + " " + uniqueSuffix())
}

// SeedSubmission inserts a submission for gameTitle with the given
// platform, completion type and hours, created at createdAt.
func SeedSubmission(
	t *testing.T,
	pool *pgxpool.Pool,
	userID, gameTitle, platform, completionType string,
	hours float64,
	createdAt time.Time,
) domain.Submission {
	t.Helper()

	s := domain.Submission{
		ID:             uuid.New(),
		UserID:         userID,
		GameTitle:      gameTitle,
		Platform:       platform,
		CompletionType: completionType,
		HoursPlayed:    hours,
		Difficulty:     domain.DefaultDifficulty,
		CreatedAt:      createdAt.UTC().Truncate(time.Microsecond),
		UpdatedAt:      createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO submissions
		 (submission_id, user_id, game_title, platform, completion_type, hours_played, difficulty, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.UserID, s.GameTitle, s.Platform, s.CompletionType,
		s.HoursPlayed, s.Difficulty, s.Notes, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("SeedSubmission: %v", err)
	}

	return s
}

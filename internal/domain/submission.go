package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gametime-api/pkg/optional"
)

// DefaultDifficulty is stored when a submission does not state a difficulty.
const DefaultDifficulty = "N/A"

// Submission is one user's reported play time for a game, platform and
// completion type.
type Submission struct {
	ID             uuid.UUID
	UserID         string
	GameTitle      string
	Platform       string
	CompletionType string
	HoursPlayed    float64
	Difficulty     string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SubmissionPatch carries the fields of a partial update. Only present
// fields are written; UpdatedAt is always written.
type SubmissionPatch struct {
	HoursPlayed    optional.Value[float64]
	Platform       optional.Value[string]
	CompletionType optional.Value[string]
	Notes          optional.Value[*string]
	UpdatedAt      time.Time
}

// IsEmpty reports whether no updatable field is present.
func (p SubmissionPatch) IsEmpty() bool {
	return !p.HoursPlayed.IsSet() && !p.Platform.IsSet() &&
		!p.CompletionType.IsSet() && !p.Notes.IsSet()
}

// Apply returns a copy of s with the patch applied.
func (p SubmissionPatch) Apply(s Submission) Submission {
	if v, ok := p.HoursPlayed.Get(); ok {
		s.HoursPlayed = v
	}
	if v, ok := p.Platform.Get(); ok {
		s.Platform = v
	}
	if v, ok := p.CompletionType.Get(); ok {
		s.CompletionType = v
	}
	if v, ok := p.Notes.Get(); ok {
		s.Notes = v
	}
	s.UpdatedAt = p.UpdatedAt
	return s
}

// SubmissionIndex names a secondary index of the submission store.
type SubmissionIndex string

const (
	// IndexUser is keyed by user id.
	IndexUser SubmissionIndex = "UserIndex"
	// IndexGame is keyed by normalized game title.
	IndexGame SubmissionIndex = "GameIndex"
)

func (i SubmissionIndex) String() string { return string(i) }

func (i SubmissionIndex) IsValid() bool {
	switch i {
	case IndexUser, IndexGame:
		return true
	}
	return false
}

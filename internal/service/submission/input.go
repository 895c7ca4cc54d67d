package submission

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gametime-api/internal/domain"
	"github.com/heartmarshall/gametime-api/pkg/optional"
)

// CreateInput holds the parameters for creating a submission.
// HoursPlayed is a pointer so that a missing value can be told apart from 0.
type CreateInput struct {
	UserID         string
	GameTitle      string
	HoursPlayed    *float64
	Platform       string
	CompletionType string
	Difficulty     string
	Notes          *string
}

// Validate checks the input without building a record.
func (i CreateInput) Validate() error {
	_, err := i.toSubmission()
	return err
}

// toSubmission validates the input and returns the canonical record minus
// id and timestamps. All missing fields are reported together; the
// remaining checks stop at the first failure.
func (i CreateInput) toSubmission() (domain.Submission, error) {
	userID := strings.TrimSpace(i.UserID)
	title := domain.NormalizeText(i.GameTitle)

	var missing []domain.FieldError
	for _, f := range []struct {
		name    string
		present bool
	}{
		{"userId", userID != ""},
		{"gameTitle", title != ""},
		{"hoursPlayed", i.HoursPlayed != nil},
		{"platform", strings.TrimSpace(i.Platform) != ""},
		{"completionType", strings.TrimSpace(i.CompletionType) != ""},
	} {
		if !f.present {
			missing = append(missing, domain.FieldError{
				Field:   f.name,
				Message: "required",
				Kind:    domain.ErrMissingRequiredField,
			})
		}
	}
	if len(missing) > 0 {
		return domain.Submission{}, domain.NewValidationErrors(missing)
	}

	if err := validateHours(*i.HoursPlayed); err != nil {
		return domain.Submission{}, err
	}
	platform, err := parsePlatform(i.Platform)
	if err != nil {
		return domain.Submission{}, err
	}
	completionType, err := parseCompletionType(i.CompletionType)
	if err != nil {
		return domain.Submission{}, err
	}

	difficulty := strings.TrimSpace(i.Difficulty)
	if difficulty == "" {
		difficulty = domain.DefaultDifficulty
	}

	return domain.Submission{
		UserID:         userID,
		GameTitle:      title,
		Platform:       platform.StoredValue(),
		CompletionType: completionType.Key(),
		HoursPlayed:    *i.HoursPlayed,
		Difficulty:     difficulty,
		Notes:          trimOrNil(i.Notes),
	}, nil
}

// UpdateInput holds a partial update. Absent fields are left unchanged;
// a present Notes holding nil clears the notes.
type UpdateInput struct {
	SubmissionID   uuid.UUID
	HoursPlayed    optional.Value[float64]
	Platform       optional.Value[string]
	CompletionType optional.Value[string]
	Notes          optional.Value[*string]
}

// Validate checks the input without building a patch.
func (i UpdateInput) Validate() error {
	_, err := i.toPatch(time.Time{})
	return err
}

// toPatch validates the input and returns the patch to apply, stamped with
// updatedAt. Only fields present in the input are present in the patch.
func (i UpdateInput) toPatch(updatedAt time.Time) (domain.SubmissionPatch, error) {
	if i.SubmissionID == uuid.Nil {
		return domain.SubmissionPatch{}, domain.NewValidationError(
			domain.ErrMissingRequiredField, "submissionId", "required")
	}

	patch := domain.SubmissionPatch{UpdatedAt: updatedAt}

	if hours, ok := i.HoursPlayed.Get(); ok {
		if err := validateHours(hours); err != nil {
			return domain.SubmissionPatch{}, err
		}
		patch.HoursPlayed = optional.Some(hours)
	}
	if raw, ok := i.Platform.Get(); ok {
		platform, err := parsePlatform(raw)
		if err != nil {
			return domain.SubmissionPatch{}, err
		}
		patch.Platform = optional.Some(platform.StoredValue())
	}
	if raw, ok := i.CompletionType.Get(); ok {
		completionType, err := parseCompletionType(raw)
		if err != nil {
			return domain.SubmissionPatch{}, err
		}
		patch.CompletionType = optional.Some(completionType.Key())
	}
	if notes, ok := i.Notes.Get(); ok {
		patch.Notes = optional.Some(trimOrNil(notes))
	}

	if patch.IsEmpty() {
		return domain.SubmissionPatch{}, domain.NewValidationError(
			domain.ErrNoFieldsProvided, "body", "nothing to update")
	}
	return patch, nil
}

// DeleteInput holds the parameters for deleting a submission.
type DeleteInput struct {
	SubmissionID uuid.UUID
}

// Validate checks all fields.
func (i DeleteInput) Validate() error {
	if i.SubmissionID == uuid.Nil {
		return domain.NewValidationError(domain.ErrMissingRequiredField, "submissionId", "required")
	}
	return nil
}

func validateHours(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return domain.NewValidationError(domain.ErrInvalidHours, "hoursPlayed", "must be greater than 0")
	}
	return nil
}

func parsePlatform(raw string) (domain.Platform, error) {
	p, ok := domain.ParsePlatform(raw)
	if !ok {
		return "", domain.NewValidationError(domain.ErrInvalidPlatform, "platform",
			fmt.Sprintf("invalid platform %q, valid platforms are %s",
				raw, strings.Join(domain.PlatformDisplayNames(), ", ")))
	}
	return p, nil
}

func parseCompletionType(raw string) (domain.CompletionType, error) {
	c, ok := domain.ParseCompletionType(raw)
	if !ok {
		return "", domain.NewValidationError(domain.ErrInvalidCompletionType, "completionType",
			fmt.Sprintf("invalid completion type %q, valid completion types are %s",
				raw, strings.Join(domain.CompletionTypeDisplayNames(), ", ")))
	}
	return c, nil
}

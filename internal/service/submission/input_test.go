package submission

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/gametime-api/internal/domain"
	"github.com/heartmarshall/gametime-api/pkg/optional"
)

func hours(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

func validCreateInput() CreateInput {
	return CreateInput{
		UserID:         "u1",
		GameTitle:      "hollow knight",
		HoursPlayed:    hours(30),
		Platform:       "pc",
		CompletionType: "main story",
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %T: %v", err, err)
	names := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		names[i] = fe.Field
	}
	return names
}

func TestCreateInput_Normalizes(t *testing.T) {
	t.Parallel()

	sub, err := validCreateInput().toSubmission()
	require.NoError(t, err)

	assert.Equal(t, "u1", sub.UserID)
	assert.Equal(t, "Hollow Knight", sub.GameTitle)
	assert.Equal(t, "Pc", sub.Platform)
	assert.Equal(t, "main story", sub.CompletionType)
	assert.Equal(t, 30.0, sub.HoursPlayed)
	assert.Equal(t, domain.DefaultDifficulty, sub.Difficulty)
	assert.Nil(t, sub.Notes)
}

func TestCreateInput_CanonicalForms(t *testing.T) {
	t.Parallel()

	in := validCreateInput()
	in.GameTitle = "  ELDEN   ring "
	in.Platform = "PLAYSTATION 5"
	in.CompletionType = "Main + EXTRAS"
	in.Difficulty = " hard "
	in.Notes = strPtr("  no summons ")

	sub, err := in.toSubmission()
	require.NoError(t, err)

	assert.Equal(t, "Elden Ring", sub.GameTitle)
	assert.Equal(t, "Playstation 5", sub.Platform)
	assert.Equal(t, "main + extras", sub.CompletionType)
	assert.Equal(t, "hard", sub.Difficulty)
	require.NotNil(t, sub.Notes)
	assert.Equal(t, "no summons", *sub.Notes)
}

func TestCreateInput_BlankNotesBecomeNil(t *testing.T) {
	t.Parallel()

	in := validCreateInput()
	in.Notes = strPtr("   ")

	sub, err := in.toSubmission()
	require.NoError(t, err)
	assert.Nil(t, sub.Notes)
}

func TestCreateInput_MissingFieldsCollected(t *testing.T) {
	t.Parallel()

	err := CreateInput{GameTitle: "   ", Platform: "pc"}.Validate()

	require.ErrorIs(t, err, domain.ErrValidation)
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)
	assert.Equal(t, []string{"userId", "gameTitle", "hoursPlayed", "completionType"}, fieldNames(t, err))
}

func TestCreateInput_MissingBeforeOtherChecks(t *testing.T) {
	t.Parallel()

	in := validCreateInput()
	in.UserID = ""
	in.Platform = "Dreamcast"

	err := in.Validate()
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)
	assert.NotErrorIs(t, err, domain.ErrInvalidPlatform)
}

func TestCreateInput_Hours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hours   float64
		wantErr bool
	}{
		{hours: 0, wantErr: true},
		{hours: -1, wantErr: true},
		{hours: -0.01, wantErr: true},
		{hours: math.NaN(), wantErr: true},
		{hours: math.Inf(1), wantErr: true},
		{hours: 0.01},
		{hours: 1},
		{hours: 12.5},
		{hours: 10000},
	}
	for _, tt := range tests {
		in := validCreateInput()
		in.HoursPlayed = hours(tt.hours)

		err := in.Validate()
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrInvalidHours, "hours %v", tt.hours)
			assert.Equal(t, []string{"hoursPlayed"}, fieldNames(t, err))
		} else {
			assert.NoError(t, err, "hours %v", tt.hours)
		}
	}
}

func TestCreateInput_InvalidPlatform(t *testing.T) {
	t.Parallel()

	for _, platform := range []string{"Dreamcast", "ps5", "PLAYSTATION_5", "Playstation"} {
		in := validCreateInput()
		in.Platform = platform

		err := in.Validate()
		require.ErrorIs(t, err, domain.ErrInvalidPlatform, "platform %q", platform)

		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		for _, name := range domain.PlatformDisplayNames() {
			assert.Contains(t, ve.Errors[0].Message, name)
		}
	}
}

func TestCreateInput_InvalidCompletionType(t *testing.T) {
	t.Parallel()

	in := validCreateInput()
	in.CompletionType = "speedrun"

	err := in.Validate()
	require.ErrorIs(t, err, domain.ErrInvalidCompletionType)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "completionType", ve.Errors[0].Field)
	for _, name := range domain.CompletionTypeDisplayNames() {
		assert.Contains(t, ve.Errors[0].Message, name)
	}
}

func TestCreateInput_PlatformCheckedBeforeCompletionType(t *testing.T) {
	t.Parallel()

	in := validCreateInput()
	in.Platform = "Dreamcast"
	in.CompletionType = "speedrun"

	err := in.Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidPlatform)
	assert.NotErrorIs(t, err, domain.ErrInvalidCompletionType)
}

func TestUpdateInput_NoFields(t *testing.T) {
	t.Parallel()

	err := UpdateInput{SubmissionID: uuid.New()}.Validate()
	assert.ErrorIs(t, err, domain.ErrNoFieldsProvided)
}

func TestUpdateInput_MissingID(t *testing.T) {
	t.Parallel()

	err := UpdateInput{HoursPlayed: optional.Some(3.0)}.Validate()
	assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
}

func TestUpdateInput_FieldChecks(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	tests := []struct {
		name  string
		input UpdateInput
		want  error
	}{
		{name: "zero hours", input: UpdateInput{SubmissionID: id, HoursPlayed: optional.Some(0.0)}, want: domain.ErrInvalidHours},
		{name: "negative hours", input: UpdateInput{SubmissionID: id, HoursPlayed: optional.Some(-5.0)}, want: domain.ErrInvalidHours},
		{name: "bad platform", input: UpdateInput{SubmissionID: id, Platform: optional.Some("Atari")}, want: domain.ErrInvalidPlatform},
		{name: "empty platform", input: UpdateInput{SubmissionID: id, Platform: optional.Some("")}, want: domain.ErrInvalidPlatform},
		{name: "bad completion type", input: UpdateInput{SubmissionID: id, CompletionType: optional.Some("any%")}, want: domain.ErrInvalidCompletionType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tt.input.Validate(), tt.want)
		})
	}
}

func TestUpdateInput_PatchCarriesOnlyPresentFields(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	patch, err := UpdateInput{
		SubmissionID:   uuid.New(),
		Platform:       optional.Some("xbox one"),
		CompletionType: optional.Some("COMPLETIONIST"),
	}.toPatch(now)
	require.NoError(t, err)

	assert.False(t, patch.HoursPlayed.IsSet())
	assert.False(t, patch.Notes.IsSet())
	assert.Equal(t, optional.Some("Xbox One"), patch.Platform)
	assert.Equal(t, optional.Some("completionist"), patch.CompletionType)
	assert.Equal(t, now, patch.UpdatedAt)
}

func TestUpdateInput_NotesOnly(t *testing.T) {
	t.Parallel()

	cleared, err := UpdateInput{
		SubmissionID: uuid.New(),
		Notes:        optional.Some[*string](nil),
	}.toPatch(time.Now())
	require.NoError(t, err)
	notes, ok := cleared.Notes.Get()
	assert.True(t, ok)
	assert.Nil(t, notes)

	blank, err := UpdateInput{
		SubmissionID: uuid.New(),
		Notes:        optional.Some(strPtr("  ")),
	}.toPatch(time.Now())
	require.NoError(t, err)
	notes, ok = blank.Notes.Get()
	assert.True(t, ok)
	assert.Nil(t, notes)
}

func TestDeleteInput_Validate(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, DeleteInput{}.Validate(), domain.ErrMissingRequiredField)
	assert.NoError(t, DeleteInput{SubmissionID: uuid.New()}.Validate())
}

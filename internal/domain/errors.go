package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound              = errors.New("not found")
	ErrValidation            = errors.New("validation error")
	ErrConditionFailed       = errors.New("condition failed")
	ErrRepositoryUnavailable = errors.New("repository unavailable")
)

// Validation error kinds. A *ValidationError matches ErrValidation and the
// kind of each of its field errors via errors.Is.
var (
	ErrMissingRequiredField  = errors.New("missing required field")
	ErrInvalidHours          = errors.New("invalid hours")
	ErrInvalidPlatform       = errors.New("invalid platform")
	ErrInvalidCompletionType = errors.New("invalid completion type")
	ErrNoFieldsProvided      = errors.New("no fields provided")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
	Kind    error
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() []error {
	errs := []error{ErrValidation}
	for _, fe := range e.Errors {
		if fe.Kind != nil {
			errs = append(errs, fe.Kind)
		}
	}
	return errs
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(kind error, field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message, Kind: kind}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

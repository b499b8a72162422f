package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
	// ErrInvalidState is returned when an AIP is not in the status an operation requires.
	ErrInvalidState = errors.New("invalid state")
	// ErrStorage marks object or row write failures inside the submission pipeline.
	ErrStorage = errors.New("storage error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Message
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StateError carries a human-readable reason for an ErrInvalidState failure.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

func (e *StateError) Unwrap() error { return ErrInvalidState }

// NewStateError creates an ErrInvalidState error with a caller-facing message.
func NewStateError(message string) *StateError {
	return &StateError{Message: message}
}

// ReasonError attaches a caller-facing message to one of the sentinel errors.
// It is used for Unauthorized, NotFound and Conflict results whose message
// must reach the caller verbatim.
type ReasonError struct {
	Kind    error
	Message string
}

func (e *ReasonError) Error() string { return e.Message }

func (e *ReasonError) Unwrap() error { return e.Kind }

// Reason wraps kind with a message.
func Reason(kind error, message string) *ReasonError {
	return &ReasonError{Kind: kind, Message: message}
}

// StorageFailure wraps err as an ErrStorage with an operation description.
func StorageFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")

	// ErrImmutableField indicates an attempt to reassign a write-once field
	ErrImmutableField = errors.New("immutable field")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidationFailed, so callers can match
// any ValidationError with errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ImmutableFieldError is returned when a field that may only be assigned once
// is written again. The entity is left unchanged.
type ImmutableFieldError struct {
	Field string
}

// Error returns a formatted error message for the immutable field error.
func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("field '%s' cannot be changed after creation", e.Field)
}

// Is reports whether target is ErrImmutableField.
func (e *ImmutableFieldError) Is(target error) bool {
	return target == ErrImmutableField
}

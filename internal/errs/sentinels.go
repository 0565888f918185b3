// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates failed authentication. It is returned for an
	// unknown username and a wrong password alike.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrNotAuthenticated indicates an action that requires a logged-in user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrConflict indicates a delete blocked by referential integrity
	// (e.g., a user that still owns workouts).
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates a bad field value. Concrete failures are
	// FieldError values wrapping this sentinel.
	ErrValidation = errors.New("validation failed")
)

// FieldError reports which field failed validation and why.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrValidation) hold for every FieldError.
func (e *FieldError) Unwrap() error { return ErrValidation }

// Field constructs a FieldError.
func Field(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

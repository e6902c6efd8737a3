package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is reserved for operations a caller is not permitted to
	// perform. Ownership violations on tasks deliberately do NOT use it; they
	// surface as store.ErrTaskNotFound so a non-owned task is
	// indistinguishable from a non-existent one.
	ErrUnauthorized = errors.New("unauthorized operation")
)

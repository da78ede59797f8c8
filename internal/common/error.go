// Package common defines shared constants and sentinel errors used across
// the PhotoStudio core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Auth and session errors.
	ErrInvalidCredential = errors.New("invalid credential")
	ErrAlreadyExists     = errors.New("already exists")
	ErrNoActiveSession   = errors.New("no active session")

	// Validation errors.
	ErrInvalidInput = errors.New("invalid input")
)

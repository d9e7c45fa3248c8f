// Package common defines sentinel errors shared across tracker components.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
)

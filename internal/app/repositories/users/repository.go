// Package users provides the account repository and the session accessor,
// both implemented as read-modify-write transactions on the document store.
package users

import (
	"context"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
)

// Repository describes account and session operations.
//
// Not-found conditions (failed authentication, missing or dangling session
// reference) are reported as common.ErrNotFound, never as a panic or a
// custom error type.
type Repository interface {
	// Create appends a new user with a fresh identifier and persists it.
	Create(ctx context.Context, username, email, password string) (models.User, error)

	// Authenticate matches username and password exactly (case-sensitive,
	// no hashing) and marks the matched user as current.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// Current resolves the session reference to a user record.
	Current(ctx context.Context) (models.User, error)

	// Logout clears the session reference.
	Logout(ctx context.Context) error
}

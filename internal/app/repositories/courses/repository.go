// Package courses provides the course repository, implemented as
// read-modify-write transactions on the document store.
package courses

import (
	"context"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
)

// Draft carries the caller-supplied fields of a new course; the identifier
// is assigned by the repository.
type Draft struct {
	UserID     string
	CourseName string
	Platform   string
	StartDate  string
	Deadline   string
	Progress   int
}

// Patch lists optional field updates. Nil fields are left untouched; set
// fields are shallow-merged over the stored record.
type Patch struct {
	CourseName *string
	Platform   *string
	StartDate  *string
	Deadline   *string
	Progress   *int
}

// Repository describes CRUD and query operations for courses.
type Repository interface {
	// Create assigns a fresh identifier, appends the course and persists.
	Create(ctx context.Context, draft Draft) (models.Course, error)

	// Update merges patch over the course with the given id. An unknown id
	// is a silent no-op, not an error.
	Update(ctx context.Context, id string, patch Patch) error

	// Delete removes the course with the given id, persisting either way.
	// Deleting an absent id is an idempotent no-op.
	Delete(ctx context.Context, id string) error

	// ListByUser returns the user's courses in storage order.
	ListByUser(ctx context.Context, userID string) ([]models.Course, error)
}

// Package deadlines provides the calendar-deadline repository.
package deadlines

import (
	"context"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
)

// Draft carries the caller-supplied fields of a new deadline.
type Draft struct {
	UserID string
	Title  string
	Date   string
}

// Repository describes deadline operations. ListByUser returns insertion
// order; callers needing chronological order sort explicitly.
type Repository interface {
	Create(ctx context.Context, draft Draft) (models.Deadline, error)
	ListByUser(ctx context.Context, userID string) ([]models.Deadline, error)
}

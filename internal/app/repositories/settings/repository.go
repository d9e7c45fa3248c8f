// Package settings provides the singleton preferences repository.
package settings

import (
	"context"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
)

// Patch lists optional top-level updates. The merge is shallow: a supplied
// Profile replaces the whole stored profile object, even when only one of
// its fields is filled in.
type Patch struct {
	Theme   *string
	Profile *models.Profile
}

// Repository describes settings access.
type Repository interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, patch Patch) error
}

package settings

import (
	"context"
	"fmt"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/storage"
)

// DocumentRepository implements Repository against a storage.Store.
type DocumentRepository struct {
	store storage.Store
}

// NewDocumentRepository returns a repository bound to the given store.
func NewDocumentRepository(store storage.Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

// Get returns the current settings.
func (r *DocumentRepository) Get(ctx context.Context) (models.Settings, error) {
	return r.store.Load().Settings, nil
}

// Update merges the set patch fields at the top level and persists.
func (r *DocumentRepository) Update(ctx context.Context, patch Patch) error {
	doc := r.store.Load()

	if patch.Theme != nil {
		doc.Settings.Theme = *patch.Theme
	}
	if patch.Profile != nil {
		doc.Settings.Profile = *patch.Profile
	}

	if err := r.store.Save(doc); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

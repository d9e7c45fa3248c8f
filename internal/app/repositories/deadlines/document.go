package deadlines

import (
	"context"
	"fmt"

	"github.com/google/uuid"

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

// Create assigns a UUID, appends the deadline and persists the document.
func (r *DocumentRepository) Create(ctx context.Context, draft Draft) (models.Deadline, error) {
	doc := r.store.Load()

	deadline := models.Deadline{
		ID:     uuid.NewString(),
		UserID: draft.UserID,
		Title:  draft.Title,
		Date:   draft.Date,
	}
	doc.Deadlines = append(doc.Deadlines, deadline)

	if err := r.store.Save(doc); err != nil {
		return models.Deadline{}, fmt.Errorf("failed to save deadline: %w", err)
	}
	return deadline, nil
}

// ListByUser returns deadlines owned by userID in storage order.
func (r *DocumentRepository) ListByUser(ctx context.Context, userID string) ([]models.Deadline, error) {
	doc := r.store.Load()

	var result []models.Deadline
	for _, d := range doc.Deadlines {
		if d.UserID == userID {
			result = append(result, d)
		}
	}
	return result, nil
}

package courses

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

// Create assigns a UUID, appends the course and persists the document.
// Progress is stored as given; range validation belongs to the caller.
func (r *DocumentRepository) Create(ctx context.Context, draft Draft) (models.Course, error) {
	doc := r.store.Load()

	course := models.Course{
		ID:         uuid.NewString(),
		UserID:     draft.UserID,
		CourseName: draft.CourseName,
		Platform:   draft.Platform,
		StartDate:  draft.StartDate,
		Deadline:   draft.Deadline,
		Progress:   draft.Progress,
	}
	doc.Courses = append(doc.Courses, course)

	if err := r.store.Save(doc); err != nil {
		return models.Course{}, fmt.Errorf("failed to save course: %w", err)
	}
	return course, nil
}

// Update shallow-merges the set patch fields over the stored record and
// persists. When id is unknown nothing is written at all.
func (r *DocumentRepository) Update(ctx context.Context, id string, patch Patch) error {
	doc := r.store.Load()

	for i := range doc.Courses {
		if doc.Courses[i].ID != id {
			continue
		}
		c := &doc.Courses[i]
		if patch.CourseName != nil {
			c.CourseName = *patch.CourseName
		}
		if patch.Platform != nil {
			c.Platform = *patch.Platform
		}
		if patch.StartDate != nil {
			c.StartDate = *patch.StartDate
		}
		if patch.Deadline != nil {
			c.Deadline = *patch.Deadline
		}
		if patch.Progress != nil {
			c.Progress = *patch.Progress
		}
		if err := r.store.Save(doc); err != nil {
			return fmt.Errorf("failed to save course: %w", err)
		}
		return nil
	}
	return nil
}

// Delete drops any course with the given id and persists the document,
// whether or not a match was found.
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	doc := r.store.Load()

	kept := doc.Courses[:0]
	for _, c := range doc.Courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	doc.Courses = kept

	if err := r.store.Save(doc); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}

// ListByUser returns courses owned by userID, preserving storage order.
func (r *DocumentRepository) ListByUser(ctx context.Context, userID string) ([]models.Course, error) {
	doc := r.store.Load()

	var result []models.Course
	for _, c := range doc.Courses {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

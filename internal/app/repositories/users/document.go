package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/storage"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/common"
)

// DocumentRepository implements Repository against a storage.Store.
type DocumentRepository struct {
	store storage.Store
}

// NewDocumentRepository returns a repository bound to the given store.
func NewDocumentRepository(store storage.Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

// Create appends a new user and persists the document. Username uniqueness
// is by convention only and is not enforced here.
func (r *DocumentRepository) Create(ctx context.Context, username, email, password string) (models.User, error) {
	doc := r.store.Load()

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Password: password,
	}
	doc.Users = append(doc.Users, user)

	if err := r.store.Save(doc); err != nil {
		return models.User{}, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}

// Authenticate scans users for an exact username/password match. On a match
// the session reference is set and persisted; a miss returns
// common.ErrNotFound without touching the document.
func (r *DocumentRepository) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	doc := r.store.Load()

	for _, u := range doc.Users {
		if u.Username == username && u.Password == password {
			id := u.ID
			doc.CurrentUser = &id
			if err := r.store.Save(doc); err != nil {
				return models.User{}, fmt.Errorf("failed to save session: %w", err)
			}
			return u, nil
		}
	}
	return models.User{}, common.ErrNotFound
}

// Current resolves the session reference. A nil reference and a dangling
// reference both return common.ErrNotFound.
func (r *DocumentRepository) Current(ctx context.Context) (models.User, error) {
	doc := r.store.Load()

	if doc.CurrentUser == nil {
		return models.User{}, common.ErrNotFound
	}
	for _, u := range doc.Users {
		if u.ID == *doc.CurrentUser {
			return u, nil
		}
	}
	return models.User{}, common.ErrNotFound
}

// Logout clears the session reference and persists the document.
func (r *DocumentRepository) Logout(ctx context.Context) error {
	doc := r.store.Load()

	doc.CurrentUser = nil
	if err := r.store.Save(doc); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

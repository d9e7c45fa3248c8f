package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/storage"
)

func newTestRepo(t *testing.T) *DocumentRepository {
	t.Helper()
	return NewDocumentRepository(storage.NewFileStore(t.TempDir()))
}

func strptr(s string) *string { return &s }

func TestGet_Defaults(t *testing.T) {
	r := newTestRepo(t)

	got, err := r.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.DefaultTheme, got.Theme)
	require.Equal(t, models.Profile{}, got.Profile)
}

func TestUpdate_ThemeOnlyLeavesProfileUntouched(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	profile := models.Profile{Name: "Aditi", Email: "aditi@example.com"}
	require.NoError(t, r.Update(ctx, Patch{Profile: &profile}))

	require.NoError(t, r.Update(ctx, Patch{Theme: strptr("blue")}))

	got, err := r.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "blue", got.Theme)
	require.Equal(t, profile, got.Profile)
}

func TestUpdate_ProfileReplacesWholeObject(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Update(ctx, Patch{
		Profile: &models.Profile{Name: "Aditi", Email: "aditi@example.com"},
	}))

	// A partial profile still replaces the whole object: the email from the
	// previous update must not survive.
	require.NoError(t, r.Update(ctx, Patch{Profile: &models.Profile{Name: "A. K."}}))

	got, err := r.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, models.Profile{Name: "A. K."}, got.Profile)
}

func TestUpdate_EmptyPatchPersistsUnchanged(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Update(ctx, Patch{Theme: strptr("green")}))
	require.NoError(t, r.Update(ctx, Patch{}))

	got, err := r.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "green", got.Theme)
}

package courses

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/storage"
)

func newTestRepo(t *testing.T) *DocumentRepository {
	t.Helper()
	return NewDocumentRepository(storage.NewFileStore(t.TempDir()))
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func TestCreateAndListByUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	mine, err := r.Create(ctx, Draft{
		UserID: "u1", CourseName: "Go Basics", Platform: "Coursera",
		StartDate: "2025-01-01", Deadline: "2025-03-01", Progress: 10,
	})
	require.NoError(t, err)
	require.NotEmpty(t, mine.ID)

	_, err = r.Create(ctx, Draft{UserID: "u2", CourseName: "Other"})
	require.NoError(t, err)

	list, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, mine, list[0])
}

func TestListByUser_PreservesStorageOrder(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, n := range names {
		_, err := r.Create(ctx, Draft{UserID: "u1", CourseName: n})
		require.NoError(t, err)
	}

	list, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, n := range names {
		require.Equal(t, n, list[i].CourseName)
	}
}

func TestUpdate_MergesOnlySetFields(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, Draft{
		UserID: "u1", CourseName: "Go Basics", Platform: "Coursera",
		StartDate: "2025-01-01", Deadline: "2025-03-01", Progress: 10,
	})
	require.NoError(t, err)

	err = r.Update(ctx, created.ID, Patch{Progress: intptr(50), Platform: strptr("edX")})
	require.NoError(t, err)

	list, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	require.Equal(t, 50, got.Progress)
	require.Equal(t, "edX", got.Platform)
	// Untouched fields keep their original values.
	require.Equal(t, "Go Basics", got.CourseName)
	require.Equal(t, "2025-01-01", got.StartDate)
	require.Equal(t, "2025-03-01", got.Deadline)
}

func TestUpdate_UnknownIDIsSilentNoop(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, Draft{UserID: "u1", CourseName: "Go Basics"})
	require.NoError(t, err)

	require.NoError(t, r.Update(ctx, "no-such-id", Patch{Progress: intptr(99)}))

	list, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []models.Course{created}, list)
}

func TestUpdate_ProgressDrivesCompletion(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, Draft{UserID: "u1", CourseName: "Go Basics"})
	require.NoError(t, err)

	require.NoError(t, r.Update(ctx, created.ID, Patch{Progress: intptr(50)}))
	list, _ := r.ListByUser(ctx, "u1")
	require.Equal(t, models.CompletionInProgress, list[0].Completion())

	require.NoError(t, r.Update(ctx, created.ID, Patch{Progress: intptr(100)}))
	list, _ = r.ListByUser(ctx, "u1")
	require.Equal(t, models.CompletionComplete, list[0].Completion())
}

func TestDelete_RemovesOnlyMatchingCourse(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first, err := r.Create(ctx, Draft{UserID: "u1", CourseName: "one"})
	require.NoError(t, err)
	second, err := r.Create(ctx, Draft{UserID: "u1", CourseName: "two"})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, first.ID))

	list, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []models.Course{second}, list)
}

func TestDelete_AbsentIDIsIdempotent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, Draft{UserID: "u1", CourseName: "one"})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, "no-such-id"))
	require.NoError(t, r.Delete(ctx, "no-such-id"))

	list, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []models.Course{created}, list)
}

func TestCreateUpdateDelete_Sequence(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	a, err := r.Create(ctx, Draft{UserID: "u1", CourseName: "a"})
	require.NoError(t, err)
	b, err := r.Create(ctx, Draft{UserID: "u1", CourseName: "b"})
	require.NoError(t, err)
	c, err := r.Create(ctx, Draft{UserID: "u1", CourseName: "c"})
	require.NoError(t, err)

	require.NoError(t, r.Update(ctx, b.ID, Patch{CourseName: strptr("b2"), Progress: intptr(70)}))
	require.NoError(t, r.Delete(ctx, a.ID))

	list, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "b2", list[0].CourseName)
	require.Equal(t, 70, list[0].Progress)
	require.Equal(t, c.ID, list[1].ID)
}

func TestDeadlineStatus_OnStoredCourse(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	created, err := r.Create(ctx, Draft{UserID: "u1", CourseName: "x", Deadline: "2025-05-12"})
	require.NoError(t, err)
	require.Equal(t, models.DeadlineApproaching, created.DeadlineStatus(now))
}

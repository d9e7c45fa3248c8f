package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/repositories/deadlines"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/storage"
)

func newCalendarService(t *testing.T) (CalendarService, deadlines.Repository) {
	t.Helper()
	repo := deadlines.NewDocumentRepository(storage.NewFileStore(t.TempDir()))
	return NewCalendarService(repo), repo
}

func TestMarkedDays(t *testing.T) {
	svc, repo := newCalendarService(t)
	ctx := context.Background()

	for _, d := range []deadlines.Draft{
		{UserID: "u1", Title: "quiz", Date: "2025-06-05"},
		{UserID: "u1", Title: "exam", Date: "2025-06-20"},
		{UserID: "u1", Title: "same day", Date: "2025-06-20"},
		{UserID: "u1", Title: "other month", Date: "2025-07-01"},
		{UserID: "u2", Title: "other user", Date: "2025-06-10"},
		{UserID: "u1", Title: "bad date", Date: "soon"},
	} {
		_, err := repo.Create(ctx, d)
		require.NoError(t, err)
	}

	got, err := svc.MarkedDays(ctx, "u1", 2025, time.June)
	require.NoError(t, err)
	require.Equal(t, map[int]bool{5: true, 20: true}, got)
}

func TestUpcoming_SortsAscendingAndLimits(t *testing.T) {
	svc, repo := newCalendarService(t)
	ctx := context.Background()

	for _, date := range []string{"2025-09-01", "2025-01-15", "2025-05-30"} {
		_, err := repo.Create(ctx, deadlines.Draft{UserID: "u1", Title: date, Date: date})
		require.NoError(t, err)
	}

	got, err := svc.Upcoming(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "2025-01-15", got[0].Date)
	require.Equal(t, "2025-05-30", got[1].Date)
}

func TestUpcoming_ZeroLimitReturnsAll(t *testing.T) {
	svc, repo := newCalendarService(t)
	ctx := context.Background()

	for _, date := range []string{"2025-02-01", "2025-01-01"} {
		_, err := repo.Create(ctx, deadlines.Draft{UserID: "u1", Title: date, Date: date})
		require.NoError(t, err)
	}

	got, err := svc.Upcoming(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "2025-01-01", got[0].Date)
}

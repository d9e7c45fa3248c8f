package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCourse_Completion(t *testing.T) {
	tests := []struct {
		name     string
		progress int
		want     CompletionStatus
	}{
		{"zero", 0, CompletionNotStarted},
		{"one", 1, CompletionInProgress},
		{"fifty", 50, CompletionInProgress},
		{"ninety nine", 99, CompletionInProgress},
		{"hundred", 100, CompletionComplete},
		{"over hundred not clamped", 120, CompletionNotStarted},
		{"negative", -5, CompletionNotStarted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Course{Progress: tc.progress}
			require.Equal(t, tc.want, c.Completion())
		})
	}
}

func TestClassifyDeadline(t *testing.T) {
	// Fixed "today", with a time-of-day to prove day granularity.
	now := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		want DeadlineStatus
	}{
		{"yesterday", "2025-03-14", DeadlineOverdue},
		{"today", "2025-03-15", DeadlineApproaching},
		{"in seven days", "2025-03-22", DeadlineApproaching},
		{"in eight days", "2025-03-23", DeadlineNormal},
		{"far future", "2025-06-01", DeadlineNormal},
		{"long overdue", "2024-01-01", DeadlineOverdue},
		{"unparsable", "soon", DeadlineNormal},
		{"empty", "", DeadlineNormal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyDeadline(tc.date, now))
		})
	}
}

func TestCourse_DeadlineStatus(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	c := Course{Deadline: "2025-03-10"}
	require.Equal(t, DeadlineOverdue, c.DeadlineStatus(now))
}

func TestNewDocument_Defaults(t *testing.T) {
	doc := NewDocument()

	require.Empty(t, doc.Users)
	require.Empty(t, doc.Courses)
	require.Empty(t, doc.Deadlines)
	require.Nil(t, doc.CurrentUser)
	require.Equal(t, DefaultTheme, doc.Settings.Theme)
	require.Equal(t, Profile{}, doc.Settings.Profile)
}

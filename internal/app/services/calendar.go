package services

import (
	"context"
	"sort"
	"time"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/repositories/deadlines"
)

// CalendarService derives the month-grid annotation and the upcoming list
// from the user's deadlines.
type CalendarService interface {
	// MarkedDays returns the days of the given month that carry at least
	// one deadline for the user.
	MarkedDays(ctx context.Context, userID string, year int, month time.Month) (map[int]bool, error)

	// Upcoming returns up to limit deadlines sorted ascending by date.
	// Sorting happens here; the repository guarantees insertion order only.
	Upcoming(ctx context.Context, userID string, limit int) ([]models.Deadline, error)
}

type calendarService struct {
	deadlines deadlines.Repository
}

// NewCalendarService constructs a CalendarService over the deadline repository.
func NewCalendarService(deadlines deadlines.Repository) CalendarService {
	return &calendarService{deadlines: deadlines}
}

func (s *calendarService) MarkedDays(ctx context.Context, userID string, year int, month time.Month) (map[int]bool, error) {
	list, err := s.deadlines.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	marked := make(map[int]bool)
	for _, d := range list {
		t, err := time.Parse(models.DateLayout, d.Date)
		if err != nil {
			continue
		}
		if t.Year() == year && t.Month() == month {
			marked[t.Day()] = true
		}
	}
	return marked, nil
}

func (s *calendarService) Upcoming(ctx context.Context, userID string, limit int) ([]models.Deadline, error) {
	list, err := s.deadlines.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Dates are zero-padded YYYY-MM-DD, so the lexical order is the
	// chronological order.
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date < list[j].Date })

	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

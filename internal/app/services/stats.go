package services

import (
	"context"
	"math"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/repositories/courses"
)

// Summary aggregates the dashboard stat cards for one user.
type Summary struct {
	Total           int
	Completed       int
	InProgress      int
	AverageProgress int
}

// StatsService derives course statistics; nothing here is persisted.
type StatsService interface {
	Summary(ctx context.Context, userID string) (Summary, error)
}

type statsService struct {
	courses courses.Repository
}

// NewStatsService constructs a StatsService over the course repository.
func NewStatsService(courses courses.Repository) StatsService {
	return &statsService{courses: courses}
}

// Summary counts the user's courses by completion and computes the rounded
// average progress. An empty course list yields all zeros.
func (s *statsService) Summary(ctx context.Context, userID string) (Summary, error) {
	list, err := s.courses.ListByUser(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Total: len(list)}
	total := 0
	for _, c := range list {
		total += c.Progress
		switch c.Completion() {
		case models.CompletionComplete:
			sum.Completed++
		case models.CompletionInProgress:
			sum.InProgress++
		}
	}
	if len(list) > 0 {
		sum.AverageProgress = int(math.Round(float64(total) / float64(len(list))))
	}
	return sum, nil
}

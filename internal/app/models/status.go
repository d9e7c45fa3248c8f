package models

import "time"

// DateLayout is the calendar-date format used throughout the document.
// Dates carry no time component.
const DateLayout = "2006-01-02"

// CompletionStatus classifies a course by its progress value.
type CompletionStatus string

const (
	CompletionNotStarted CompletionStatus = "not started"
	CompletionInProgress CompletionStatus = "in progress"
	CompletionComplete   CompletionStatus = "complete"
)

// Completion derives the completion classification. Complete means progress
// of exactly 100; strictly between 0 and 100 is in progress.
func (c Course) Completion() CompletionStatus {
	switch {
	case c.Progress == 100:
		return CompletionComplete
	case c.Progress > 0 && c.Progress < 100:
		return CompletionInProgress
	default:
		return CompletionNotStarted
	}
}

// DeadlineStatus classifies a date relative to the current calendar day.
type DeadlineStatus string

const (
	DeadlineOverdue     DeadlineStatus = "overdue"
	DeadlineApproaching DeadlineStatus = "approaching"
	DeadlineNormal      DeadlineStatus = "normal"
)

// ClassifyDeadline compares a calendar-date string against now at day
// granularity: overdue when strictly before today, approaching when due
// within the next 7 days (today and day 7 included), otherwise normal.
// Unparsable dates classify as normal.
func ClassifyDeadline(date string, now time.Time) DeadlineStatus {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return DeadlineNormal
	}
	due := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days := int(due.Sub(today).Hours() / 24)
	switch {
	case days < 0:
		return DeadlineOverdue
	case days <= 7:
		return DeadlineApproaching
	default:
		return DeadlineNormal
	}
}

// DeadlineStatus classifies the course deadline against now.
func (c Course) DeadlineStatus(now time.Time) DeadlineStatus {
	return ClassifyDeadline(c.Deadline, now)
}

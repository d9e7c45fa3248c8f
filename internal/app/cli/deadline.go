package cli

import (
	"context"
	"fmt"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/repositories/deadlines"
)

func (a *App) AddDeadline(ctx context.Context) {
	user := a.currentUser()
	if user == nil {
		return
	}

	title, err := GetSimpleText(a.reader, "Deadline title", a.out)
	if err != nil || title == "" {
		fmt.Fprintln(a.out, "Title is required.")
		return
	}
	date, err := GetDate(a.reader, "Date", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	if _, err := a.deadline.Create(ctx, deadlines.Draft{
		UserID: user.ID,
		Title:  title,
		Date:   date,
	}); err != nil {
		fmt.Fprintln(a.out, "Could not add deadline:", err)
		return
	}
	fmt.Fprintln(a.out, "Deadline added.")
}

// Deadlines prints the user's deadlines in chronological order.
func (a *App) Deadlines(ctx context.Context) {
	user := a.currentUser()
	if user == nil {
		return
	}

	list, err := a.calendar.Upcoming(ctx, user.ID, 0)
	if err != nil {
		fmt.Fprintln(a.out, "Could not list deadlines:", err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No deadlines yet. Use 'adddeadline' to add one.")
		return
	}

	now := a.clock.Now()
	for _, d := range list {
		marker := ""
		switch models.ClassifyDeadline(d.Date, now) {
		case models.DeadlineOverdue:
			marker = " (overdue)"
		case models.DeadlineApproaching:
			marker = " (due soon)"
		}
		fmt.Fprintf(a.out, "%s  %s%s\n", d.Date, d.Title, marker)
	}
}

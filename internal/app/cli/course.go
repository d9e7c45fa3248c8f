package cli

import (
	"context"
	"fmt"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/repositories/courses"
)

func (a *App) AddCourse(ctx context.Context) {
	user := a.currentUser()
	if user == nil {
		return
	}

	name, err := GetSimpleText(a.reader, "Course name", a.out)
	if err != nil || name == "" {
		fmt.Fprintln(a.out, "Course name is required.")
		return
	}
	platform, err := GetSimpleText(a.reader, "Platform (e.g. Coursera, edX, Udemy)", a.out)
	if err != nil {
		return
	}
	start, err := GetDate(a.reader, "Start date", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	due, err := GetDate(a.reader, "Deadline", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	if _, err := a.courses.Create(ctx, courses.Draft{
		UserID:     user.ID,
		CourseName: name,
		Platform:   platform,
		StartDate:  start,
		Deadline:   due,
	}); err != nil {
		fmt.Fprintln(a.out, "Could not add course:", err)
		return
	}
	fmt.Fprintln(a.out, "Course added.")
}

// List prints the user's courses with their progress and deadline markers.
func (a *App) List(ctx context.Context) {
	list, ok := a.listCourses(ctx)
	if !ok || len(list) == 0 {
		return
	}
	now := a.clock.Now()

	for i, c := range list {
		marker := ""
		switch c.DeadlineStatus(now) {
		case models.DeadlineOverdue:
			marker = " (overdue)"
		case models.DeadlineApproaching:
			marker = " (due soon)"
		}
		fmt.Fprintf(a.out, "%2d. %s [%s] %d%%, due %s%s\n",
			i+1, c.CourseName, c.Platform, c.Progress, c.Deadline, marker)
	}
}

func (a *App) Progress(ctx context.Context) {
	course, ok := a.selectCourse(ctx)
	if !ok {
		return
	}

	progress, err := GetInt(a.reader, "New progress (0-100)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	if progress < 0 || progress > 100 {
		fmt.Fprintln(a.out, "Progress must be between 0 and 100.")
		return
	}

	if err := a.courses.Update(ctx, course.ID, courses.Patch{Progress: &progress}); err != nil {
		fmt.Fprintln(a.out, "Could not update progress:", err)
		return
	}
	if progress == 100 {
		fmt.Fprintln(a.out, "Course complete, congratulations!")
		return
	}
	fmt.Fprintln(a.out, "Progress updated.")
}

func (a *App) DeleteCourse(ctx context.Context) {
	course, ok := a.selectCourse(ctx)
	if !ok {
		return
	}

	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete %q? (y/n)", course.CourseName), a.out)
	if err != nil || confirm != "y" {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	if err := a.courses.Delete(ctx, course.ID); err != nil {
		fmt.Fprintln(a.out, "Could not delete course:", err)
		return
	}
	fmt.Fprintln(a.out, "Course deleted.")
}

// listCourses fetches the current user's courses, reporting the empty case.
func (a *App) listCourses(ctx context.Context) ([]models.Course, bool) {
	user := a.currentUser()
	if user == nil {
		return nil, false
	}
	list, err := a.courses.ListByUser(ctx, user.ID)
	if err != nil {
		fmt.Fprintln(a.out, "Could not list courses:", err)
		return nil, false
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No courses yet. Use 'addcourse' to add one.")
	}
	return list, true
}

// selectCourse prints the course list and prompts for a number.
func (a *App) selectCourse(ctx context.Context) (models.Course, bool) {
	list, ok := a.listCourses(ctx)
	if !ok || len(list) == 0 {
		return models.Course{}, false
	}
	a.List(ctx)

	n, err := GetInt(a.reader, "Course number", a.out)
	if err != nil || n < 1 || n > len(list) {
		fmt.Fprintln(a.out, "No such course.")
		return models.Course{}, false
	}
	return list[n-1], true
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Calendar renders a month grid with deadline days marked by an asterisk.
// An optional YYYY-MM argument selects the month; default is the current one.
func (a *App) Calendar(ctx context.Context, args []string) {
	user := a.currentUser()
	if user == nil {
		return
	}

	now := a.clock.Now()
	year, month := now.Year(), now.Month()
	if len(args) > 0 {
		t, err := time.Parse("2006-01", args[0])
		if err != nil {
			fmt.Fprintln(a.out, "Usage: calendar [YYYY-MM]")
			return
		}
		year, month = t.Year(), t.Month()
	}

	marked, err := a.calendar.MarkedDays(ctx, user.ID, year, month)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load calendar:", err)
		return
	}

	fmt.Fprintf(a.out, "      %s %d\n", month, year)
	fmt.Fprintln(a.out, " Su  Mo  Tu  We  Th  Fr  Sa")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	col := int(first.Weekday())
	line := strings.Repeat("    ", col)
	for day := 1; day <= daysInMonth; day++ {
		mark := " "
		if marked[day] {
			mark = "*"
		}
		line += fmt.Sprintf("%3d%s", day, mark)
		col++
		if col == 7 {
			fmt.Fprintln(a.out, line)
			line = ""
			col = 0
		}
	}
	if line != "" {
		fmt.Fprintln(a.out, line)
	}
	fmt.Fprintln(a.out, "(* marks a day with deadlines)")
}

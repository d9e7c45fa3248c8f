package cli

import (
	"context"
	"fmt"
)

// Stats prints the dashboard summary cards for the current user.
func (a *App) Stats(ctx context.Context) {
	user := a.currentUser()
	if user == nil {
		return
	}

	sum, err := a.stats.Summary(ctx, user.ID)
	if err != nil {
		fmt.Fprintln(a.out, "Could not compute stats:", err)
		return
	}

	fmt.Fprintf(a.out, "Total courses: %d\n", sum.Total)
	fmt.Fprintf(a.out, "Completed:     %d\n", sum.Completed)
	fmt.Fprintf(a.out, "In progress:   %d\n", sum.InProgress)
	fmt.Fprintf(a.out, "Avg. progress: %d%%\n", sum.AverageProgress)
}

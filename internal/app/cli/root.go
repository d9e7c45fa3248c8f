package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if user := a.currentUser(); user != nil {
		return fmt.Sprintf("(%s) ", user.Username)
	}
	return ""
}

// Root runs the read-eval-print loop. Commands that need a session are
// guarded here; handlers report their own errors and the loop keeps going.
// The loop exits on EOF or when the user types "exit" or "quit".
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to MOOC Tracker (type 'help' for commands)")

	// Resume a session persisted by a previous run.
	if user, err := a.auth.Current(ctx); err == nil {
		a.setUser(&user)
		fmt.Fprintf(a.out, "Resumed session for %s.\n", user.Username)
	}

	for {
		fmt.Fprintf(a.out, "mooc %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)

		case "addcourse":
			if a.checkLogin() {
				a.AddCourse(ctx)
			}
		case "l", "list":
			if a.checkLogin() {
				a.List(ctx)
			}
		case "progress":
			if a.checkLogin() {
				a.Progress(ctx)
			}
		case "delete":
			if a.checkLogin() {
				a.DeleteCourse(ctx)
			}

		case "adddeadline":
			if a.checkLogin() {
				a.AddDeadline(ctx)
			}
		case "deadlines":
			if a.checkLogin() {
				a.Deadlines(ctx)
			}
		case "calendar":
			if a.checkLogin() {
				a.Calendar(ctx, args)
			}

		case "stats":
			if a.checkLogin() {
				a.Stats(ctx)
			}

		case "settings":
			a.Settings(ctx)
		case "theme":
			a.Theme(ctx, args)
		case "profile":
			a.Profile(ctx)

		case "logout":
			if a.checkLogin() {
				a.Logout(ctx)
			}

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) checkLogin() bool {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first ('login' or 'register').")
		return false
	}
	return true
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: addcourse, (l)ist, progress, delete, adddeadline, deadlines, calendar, stats, settings, theme, profile, logout, exit")
		return
	}
	fmt.Fprintln(a.out, "Available commands: register, login, settings, theme, exit")
}

package cli

import (
	"context"
	"fmt"
)

func (a *App) Login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.log.Error(ctx, "read username", "error", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "read password", "error", err)
		return
	}

	user, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return
	}
	a.setUser(&user)
	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Username)
}

func (a *App) Logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return
	}
	a.setUser(nil)
	fmt.Fprintln(a.out, "Logged out.")
}

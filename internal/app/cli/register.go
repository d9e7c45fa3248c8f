package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.log.Error(ctx, "read username", "error", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "read email", "error", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "read password", "error", err)
		return
	}

	if _, err := a.auth.Register(ctx, username, email, string(password)); err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err)
		return
	}
	fmt.Fprintln(a.out, "Account created, you can log in now.")
}

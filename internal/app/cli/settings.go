package cli

import (
	"context"
	"fmt"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/repositories/settings"
)

// Settings prints the stored theme and profile override.
func (a *App) Settings(ctx context.Context) {
	s, err := a.settings.Get(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load settings:", err)
		return
	}

	fmt.Fprintf(a.out, "Theme:   %s\n", s.Theme)
	if s.Profile == (models.Profile{}) {
		fmt.Fprintln(a.out, "Profile: (none)")
		return
	}
	fmt.Fprintf(a.out, "Profile: %s <%s>\n", s.Profile.Name, s.Profile.Email)
}

// Theme changes only the theme, leaving the profile untouched.
func (a *App) Theme(ctx context.Context, args []string) {
	theme := ""
	if len(args) > 0 {
		theme = args[0]
	} else {
		t, err := GetSimpleText(a.reader, "Theme (purple, blue, green, orange)", a.out)
		if err != nil {
			return
		}
		theme = t
	}
	if theme == "" {
		fmt.Fprintln(a.out, "Theme name is required.")
		return
	}

	if err := a.settings.Update(ctx, settings.Patch{Theme: &theme}); err != nil {
		fmt.Fprintln(a.out, "Could not update theme:", err)
		return
	}
	fmt.Fprintln(a.out, "Theme updated.")
}

// Profile replaces the whole profile override with the entered values.
func (a *App) Profile(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		return
	}
	email, err := GetSimpleText(a.reader, "Display email", a.out)
	if err != nil {
		return
	}

	profile := models.Profile{Name: name, Email: email}
	if err := a.settings.Update(ctx, settings.Patch{Profile: &profile}); err != nil {
		fmt.Fprintln(a.out, "Could not update profile:", err)
		return
	}
	fmt.Fprintln(a.out, "Profile updated.")
}

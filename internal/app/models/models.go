// Package models defines the persisted tracker document and its entities,
// plus the derived course/deadline classifications used by the dashboard.
package models

// DefaultTheme is the theme applied when no settings have been saved yet.
const DefaultTheme = "purple"

// User is an account record. Passwords are stored as entered; username
// uniqueness is by convention and not enforced by the store.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Course is a registered external course. UserID is a plain reference to a
// User; dangling references are tolerated. Progress is a percentage the
// store does not clamp.
type Course struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	CourseName string `json:"courseName"`
	Platform   string `json:"platform"`
	StartDate  string `json:"startDate"`
	Deadline   string `json:"deadline"`
	Progress   int    `json:"progress"`
}

// Deadline is a standalone calendar annotation, independent of any course.
type Deadline struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Title  string `json:"title"`
	Date   string `json:"date"`
}

// Profile overrides the current user's display name and email when set.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Settings is the singleton preferences record.
type Settings struct {
	Theme   string  `json:"theme"`
	Profile Profile `json:"profile"`
}

// Document is the single root structure holding all persisted state.
// CurrentUser references a User by id and is nil when logged out.
type Document struct {
	Users       []User     `json:"users"`
	CurrentUser *string    `json:"currentUser"`
	Courses     []Course   `json:"courses"`
	Deadlines   []Deadline `json:"deadlines"`
	Settings    Settings   `json:"settings"`
}

// NewDocument returns the default document: empty collections, no current
// user, default theme and an empty profile.
func NewDocument() *Document {
	return &Document{
		Users:     []User{},
		Courses:   []Course{},
		Deadlines: []Deadline{},
		Settings:  Settings{Theme: DefaultTheme},
	}
}

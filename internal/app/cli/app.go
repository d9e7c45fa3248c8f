// Package cli implements the interactive front end: a read-eval-print loop
// over the repositories and services, mirroring the dashboard, calendar and
// settings views of the tracker.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/config"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/repositories/courses"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/repositories/deadlines"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/repositories/settings"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/repositories/users"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/services"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/storage"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/clockx"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/filex"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	clock    clockx.Clock
	auth     services.AuthService
	stats    services.StatsService
	calendar services.CalendarService
	courses  courses.Repository
	deadline deadlines.Repository
	settings settings.Repository
	watcher  *storage.Watcher

	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	user *models.User
}

// NewApp wires the store, repositories and services for the configured data
// directory. A watcher failure is non-fatal: the app still works, it just
// cannot pick up writes from other processes.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}
	store := storage.NewFileStore(dir)

	watcher, err := storage.NewWatcher(store.Path(), c.WatchDebounce, log)
	if err != nil {
		log.Warn(ctx, "document watcher unavailable", "error", err)
		watcher = nil
	}

	userRepo := users.NewDocumentRepository(store)
	courseRepo := courses.NewDocumentRepository(store)
	deadlineRepo := deadlines.NewDocumentRepository(store)
	settingsRepo := settings.NewDocumentRepository(store)

	return &App{
		config:   c,
		log:      log,
		clock:    clockx.NewReal(),
		auth:     services.NewAuthService(userRepo, log),
		stats:    services.NewStatsService(courseRepo),
		calendar: services.NewCalendarService(deadlineRepo),
		courses:  courseRepo,
		deadline: deadlineRepo,
		settings: settingsRepo,
		watcher:  watcher,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run starts the watcher (when available) and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if a.watcher != nil {
		a.watcher.Subscribe(a.refresh)
		go a.watcher.Run(ctx)
	}
	a.Root(ctx)
}

// refresh re-resolves the session after an externally-originated write;
// another process may have logged out or switched users under us.
func (a *App) refresh() {
	user, err := a.auth.Current(context.Background())
	if err != nil {
		a.setUser(nil)
		return
	}
	a.setUser(&user)
}

func (a *App) setUser(u *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
}

func (a *App) currentUser() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

func (a *App) isLoggedIn() bool {
	return a.currentUser() != nil
}

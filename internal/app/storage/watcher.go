package storage

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/logging"
)

// Watcher reports writes to the persisted document so a front end can
// refresh its in-memory copy, the way a storage event would in a browser.
// It is optional: the store works identically with zero subscribers and no
// watcher attached, and never pushes notifications itself.
type Watcher struct {
	mu     sync.Mutex
	subs   map[int]func()
	nextID int

	fsw      *fsnotify.Watcher
	file     string
	debounce time.Duration
	log      logging.Logger
}

// NewWatcher watches the directory containing path and fans out an event
// whenever the document file is created, written or renamed into place.
// Watching the directory rather than the file survives the store's
// rename-based atomic writes.
func NewWatcher(path string, debounce time.Duration, log logging.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		subs:     make(map[int]func()),
		fsw:      fsw,
		file:     filepath.Clean(path),
		debounce: debounce,
		log:      log,
	}, nil
}

// Subscribe registers fn to run after each observed write and returns the
// matching unsubscribe function. Callbacks run on the watcher goroutine.
func (w *Watcher) Subscribe(fn func()) (unsubscribe func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.subs[id] = fn

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs, id)
	}
}

// Run pumps filesystem events until ctx is cancelled, coalescing bursts
// (temp-file create plus rename) into one notification per debounce window.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fsw.Close()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.file {
				continue
			}
			if !ev.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Rename) {
				continue
			}
			fire = time.After(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Error(ctx, "document watch error", "error", err)

		case <-fire:
			fire = nil
			w.notify()
		}
	}
}

func (w *Watcher) notify() {
	w.mu.Lock()
	subs := make([]func(), 0, len(w.subs))
	for _, fn := range w.subs {
		subs = append(subs, fn)
	}
	w.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

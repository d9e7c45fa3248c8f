// Package storage owns the persisted tracker document: a single JSON blob
// under a fixed key, replaced wholesale on every write. Repositories build
// read-modify-write operations on top of it.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
)

// StorageKey names the persisted blob. The on-disk file is <dir>/<key>.json.
const StorageKey = "mooc_tracker_data"

// Store is the document store surface exposed to repositories.
//
// Contract:
//   - Load never fails: an absent, unreadable or malformed file yields the
//     default document.
//   - Save replaces the whole document; there is no merge or versioning.
type Store interface {
	Load() *models.Document
	Save(doc *models.Document) error
}

// FileStore persists the document as one JSON file. The mutex serializes
// file access within this process; cross-process writers are last-write-wins
// by design.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store rooted at dir. The directory must exist.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, StorageKey+".json")}
}

// Path returns the location of the persisted document.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the whole document. Any failure falls back to the
// default document instead of surfacing an error.
func (s *FileStore) Load() *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.NewDocument()
	}

	doc := models.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		// Unmarshal may have partially filled doc; start over from defaults.
		return models.NewDocument()
	}
	return doc
}

// Save serializes doc and atomically replaces the previous file via a temp
// file and rename, so a failed write leaves the old document intact.
func (s *FileStore) Save(doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), StorageKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

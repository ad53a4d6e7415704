package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// Store reads and writes JSON documents with crash-safe replace semantics.
// A writer serializes the document to a temporary sibling file and renames it
// onto the target path while holding an exclusive advisory lock on a dedicated
// lock file, so a reader observes either the prior or the new complete
// document, never a partial one.
type Store struct {
	log *logger.Logger
}

// New creates a new Store.
func New(log *logger.Logger) *Store {
	return &Store{log: log}
}

// Load reads and unmarshals the document at path into out. A missing file is
// reported with an error wrapping fs.ErrNotExist so callers can fall back to
// their defaults.
func (s *Store) Load(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Save atomically replaces the document at path with the serialized doc.
func (s *Store) Save(path string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.log.Error("Failed to release file lock", logger.ErrorField(err), logger.StringField("path", path))
		}
	}()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

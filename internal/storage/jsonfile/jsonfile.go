// Package jsonfile persists the application aggregate as a single JSON
// document on local disk, implementing the storage.Store interface.
//
// The file name embeds the schema version (billbook_v4.json). Documents
// written by older builds of the same version line may lack fields that were
// added later; Load backfills those through an ordered migration table
// instead of scattered presence checks (see migrations.go).
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/acrozela/billbook/internal/models"
	"github.com/acrozela/billbook/internal/storage"
)

// SchemaVersion is the current persisted-document schema version. Bumping it
// changes the file name, leaving older documents side by side on disk.
const SchemaVersion = 4

// Ensure Store implements storage.Store.
var _ storage.Store = (*Store)(nil)

// Store reads and writes the aggregate at <dir>/billbook_v<N>.json.
type Store struct {
	path string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	name := fmt.Sprintf("billbook_v%d.json", SchemaVersion)
	return &Store{path: filepath.Join(dir, name)}, nil
}

// Path returns the location of the persisted document.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted document and returns the aggregate. Any failure
// (missing file, unreadable file, bad JSON) degrades to the default
// first-run state; the cause is logged, never returned.
func (s *Store) Load() *models.AppState {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("No persisted data, starting fresh", "path", s.path)
		} else {
			slog.Error("Failed to read persisted data, starting fresh", "path", s.path, "error", err)
		}
		return models.NewAppState()
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		slog.Error("Failed to parse persisted data, starting fresh", "path", s.path, "error", err)
		return models.NewAppState()
	}

	migrate(&doc)
	return doc.state()
}

// Save writes the full aggregate as one document, replacing the previous one.
// The write goes through a temp file and rename so a failure mid-write never
// corrupts the previously persisted document.
func (s *Store) Save(state *models.AppState) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

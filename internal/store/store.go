// Package store holds the application state: one in-memory aggregate plus
// the operations that create, update and delete entities on it.
//
// Every operation is a single atomic transformation of the aggregate;
// observers never see a partial update. Operations are serialized with one
// mutex, which is the whole concurrency story: the application is a
// single-user tool and each operation runs to completion before the next.
//
// Every successful mutation synchronously mirrors the full aggregate to the
// persistence adapter. A failed save is logged and swallowed: the in-memory
// state stays correct for the session and the previously persisted document
// is untouched. Validation failures mutate nothing and trigger no save.
package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/acrozela/billbook/internal/models"
	"github.com/acrozela/billbook/internal/storage"
)

const dateLayout = "2006-01-02"

// ValidationError reports invalid operation input. The attempted operation
// did not change any state.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Store owns the aggregate. Construct it with New at startup and Flush it at
// shutdown; inject it into whatever layer needs state access.
type Store struct {
	mu      sync.Mutex
	state   *models.AppState
	storage storage.Store
}

// New hydrates a Store from the persistence adapter.
func New(st storage.Store) *Store {
	s := &Store{
		state:   st.Load(),
		storage: st,
	}
	slog.Info("State store hydrated",
		"clients", len(s.state.Clients),
		"products", len(s.state.Products),
		"invoices", len(s.state.Invoices),
		"expenses", len(s.state.Expenses),
	)
	return s
}

// persist mirrors the aggregate to storage. Callers must hold s.mu. Failures
// are logged and dropped; the session continues on the in-memory state.
func (s *Store) persist() {
	if err := s.storage.Save(s.state); err != nil {
		slog.Error("State not persisted, continuing in memory", "error", err)
	}
}

// Flush writes the aggregate out once more, surfacing the error. Called at
// shutdown to close the store's lifecycle.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage.Save(s.state)
}

// Snapshot returns a deep copy of the aggregate, used for the backup export.
func (s *Store) Snapshot() *models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Settings returns the current company settings.
func (s *Store) Settings() models.CompanySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// UpdateSettings replaces the company settings singleton.
func (s *Store) UpdateSettings(settings models.CompanySettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Settings = settings
	slog.Info("Settings updated", "company", settings.Name)
	s.persist()
}

// GoogleConnected reports the external identity connection flag.
func (s *Store) GoogleConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsGoogleConnected
}

// SetGoogleConnected flips the external identity connection flag.
func (s *Store) SetGoogleConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsGoogleConnected = connected
	slog.Info("Google connection flag updated", "connected", connected)
	s.persist()
}

func today() string {
	return time.Now().Format(dateLayout)
}

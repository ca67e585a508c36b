// Package storage provides the abstraction for persisting the application
// aggregate.
package storage

import "github.com/acrozela/billbook/internal/models"

// Store is the persistence adapter: the whole AppState is read and written as
// one document. This abstraction keeps the state store independent of where
// the document lives (local file today, anything else tomorrow).
type Store interface {
	// Load reads the persisted aggregate. It never fails from the caller's
	// point of view: a missing, unreadable or unparsable document degrades to
	// the default first-run state, with the cause logged as a side channel.
	Load() *models.AppState

	// Save serializes the full aggregate and writes it as one document,
	// replacing any prior value. The caller decides whether a failure is
	// surfaced; the previously persisted document is never left corrupted.
	Save(state *models.AppState) error
}

// Package google mocks the external identity connection.
//
// The real integration is an external collaborator; all the application
// tracks is a connected flag. Connect simulates the handshake with a fixed
// delay, then flips the flag. There is no error path, no retry and no
// disconnect operation.
package google

import (
	"log/slog"
	"time"

	"github.com/acrozela/billbook/internal/store"
)

// DefaultDelay matches the simulated network delay of the original flow.
const DefaultDelay = 1500 * time.Millisecond

// Connector performs the mock connection against the state store.
type Connector struct {
	store *store.Store
	delay time.Duration
}

// New creates a Connector. delay is how long Connect blocks before flipping
// the flag; pass DefaultDelay outside tests.
func New(st *store.Store, delay time.Duration) *Connector {
	return &Connector{store: st, delay: delay}
}

// Connect blocks for the fixed delay, then marks the account connected.
// It is fire-once and not cancellable. Connecting while already connected
// is harmless.
func (c *Connector) Connect() bool {
	slog.Info("Google connection requested")
	time.Sleep(c.delay)
	c.store.SetGoogleConnected(true)
	return true
}

// Connected reports the current flag.
func (c *Connector) Connected() bool {
	return c.store.GoogleConnected()
}

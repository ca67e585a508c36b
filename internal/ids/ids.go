// Package ids generates entity identifiers.
//
// Identifiers are 128 random bits rendered as uppercase base32, which keeps
// the uppercase-alphanumeric shape invoice numbers are printed with while
// making collisions negligible without any uniqueness scan.
package ids

import (
	"encoding/base32"

	"github.com/google/uuid"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// New returns a new 26-character uppercase identifier.
func New() string {
	id := uuid.New()
	return encoding.EncodeToString(id[:])
}

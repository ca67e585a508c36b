// Package geo models the device geolocation capability used to pin a
// client's shop location.
package geo

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable is returned when the device cannot provide a position.
// Callers surface it as a notice and leave form state unchanged.
var ErrUnavailable = errors.New("location unavailable")

// Coordinates is a geographic position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Locator is the capability that resolves the current position.
// The real capability lives on the client device; the server side only
// defines the contract and the pin format.
type Locator interface {
	Current(ctx context.Context) (Coordinates, error)
}

// Pin formats coordinates as the client location pin: "lat, long" with
// 6-decimal precision.
func Pin(c Coordinates) string {
	return fmt.Sprintf("%.6f, %.6f", c.Latitude, c.Longitude)
}

type unavailable struct{}

func (unavailable) Current(context.Context) (Coordinates, error) {
	return Coordinates{}, ErrUnavailable
}

// Unavailable returns a Locator that always fails, the default when no
// device capability is wired in.
func Unavailable() Locator {
	return unavailable{}
}

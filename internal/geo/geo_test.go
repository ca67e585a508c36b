package geo

import (
	"context"
	"errors"
	"testing"
)

func TestPin(t *testing.T) {
	tests := []struct {
		name string
		in   Coordinates
		want string
	}{
		{"mumbai", Coordinates{Latitude: 19.07609, Longitude: 72.877426}, "19.076090, 72.877426"},
		{"rounding to six places", Coordinates{Latitude: 1.23456789, Longitude: -0.0000004}, "1.234568, -0.000000"},
		{"zero", Coordinates{}, "0.000000, 0.000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pin(tt.in); got != tt.want {
				t.Errorf("Pin(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable().Current(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Current() error = %v, want ErrUnavailable", err)
	}
}

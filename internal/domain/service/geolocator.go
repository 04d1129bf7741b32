package service

import (
	"context"

	"github.com/paulmach/orb"

	"pharmacy/internal/errors"
)

// Geolocation terminal failures. Each maps to a distinct user-facing
// message; capture is best-effort and must never block order submission.
var (
	ErrLocationDenied      = errors.New("geolocation: permission denied")
	ErrLocationUnavailable = errors.New("geolocation: position unavailable")
	ErrLocationTimeout     = errors.New("geolocation: timed out")
)

// Geolocator resolves the device's current position. The lookup is bounded
// by the implementation's configured timeout; coordinates are used only for
// map-link construction, never for validation.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (orb.Point, error)
}

// Package geo resolves the device position from a configurable lookup
// endpoint, the server-side stand-in for a browser geolocation prompt.
package geo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/paulmach/orb"

	"pharmacy/config"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/errors"
)

const defaultTimeout = 10 * time.Second

type positionResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type httpLocator struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
}

// NewHTTPLocator builds a position lookup against the configured endpoint.
// Returns nil when geolocation is not configured; callers treat a nil
// locator as "position unavailable".
func NewHTTPLocator(cfg *config.Config) service.Geolocator {
	if cfg.Geolocation == nil || cfg.Geolocation.Endpoint == "" {
		return nil
	}

	timeout := cfg.Geolocation.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpLocator{
		endpoint: cfg.Geolocation.Endpoint,
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
	}
}

func (l *httpLocator) CurrentPosition(ctx context.Context) (orb.Point, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "build position request")
	}

	resp, err := l.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return orb.Point{}, service.ErrLocationTimeout
		}

		return orb.Point{}, service.ErrLocationUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized:
		return orb.Point{}, service.ErrLocationDenied
	case resp.StatusCode != http.StatusOK:
		return orb.Point{}, service.ErrLocationUnavailable
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return orb.Point{}, service.ErrLocationUnavailable
	}

	var pos positionResponse
	if err := json.Unmarshal(raw, &pos); err != nil {
		return orb.Point{}, service.ErrLocationUnavailable
	}

	// orb points are (lon, lat)
	return orb.Point{pos.Longitude, pos.Latitude}, nil
}

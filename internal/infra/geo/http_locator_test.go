package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/config"
	"pharmacy/internal/domain/service"
)

func locatorFor(endpoint string, timeout time.Duration) service.Geolocator {
	return NewHTTPLocator(&config.Config{
		Geolocation: &config.GeolocationConfig{Endpoint: endpoint, Timeout: timeout},
	})
}

func TestHTTPLocator_NilWhenUnconfigured(t *testing.T) {
	assert.Nil(t, NewHTTPLocator(&config.Config{}))
	assert.Nil(t, NewHTTPLocator(&config.Config{Geolocation: &config.GeolocationConfig{}}))
}

func TestHTTPLocator_ReturnsPosition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"latitude":30.0444,"longitude":31.2357}`))
	}))
	defer server.Close()

	point, err := locatorFor(server.URL, time.Second).CurrentPosition(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 30.0444, point.Lat(), 1e-9)
	assert.InDelta(t, 31.2357, point.Lon(), 1e-9)
}

func TestHTTPLocator_DeniedStatuses(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusUnauthorized} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := locatorFor(server.URL, time.Second).CurrentPosition(context.Background())
		assert.ErrorIs(t, err, service.ErrLocationDenied)
		server.Close()
	}
}

func TestHTTPLocator_ServerErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := locatorFor(server.URL, time.Second).CurrentPosition(context.Background())
	assert.ErrorIs(t, err, service.ErrLocationUnavailable)
}

func TestHTTPLocator_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	_, err := locatorFor(server.URL, 20*time.Millisecond).CurrentPosition(context.Background())
	assert.ErrorIs(t, err, service.ErrLocationTimeout)
}

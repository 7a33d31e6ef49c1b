//go:build unit
// +build unit

package connector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWeatherConnector_FetchCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"weather": [{"main": "Rain", "description": "light rain"}],
			"main": {"temp": 27.4, "feels_like": 29.1, "humidity": 78},
			"wind": {"speed": 5.0},
			"rain": {"1h": 2.3},
			"dt": 1717000000
		}`))
	}))
	defer server.Close()

	settings := &config.WeatherSettings{
		APIKey:  "test-key",
		BaseURL: server.URL,
	}
	weatherConnector, err := NewOpenWeatherConnector(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	observation, err := weatherConnector.FetchCurrent(context.Background(), "Ranchi", 23.3441, 85.3096)
	require.NoError(t, err)

	assert.Equal(t, "Ranchi", observation.LocationName)
	assert.Equal(t, 27.4, observation.TemperatureCelsius)
	assert.Equal(t, 78, observation.HumidityPercent)
	assert.Equal(t, 2.3, observation.RainfallMm)
	assert.Equal(t, "Rain", observation.Condition)
	assert.True(t, observation.IsRainy())
	require.NotNil(t, observation.WindSpeedKph)
	assert.InDelta(t, 18.0, *observation.WindSpeedKph, 0.01)
	require.NoError(t, observation.Validate())
}

func TestOpenWeatherConnector_FetchCurrent_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	settings := &config.WeatherSettings{
		BaseURL: server.URL,
	}
	weatherConnector, err := NewOpenWeatherConnector(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = weatherConnector.FetchCurrent(context.Background(), "Ranchi", 23.3441, 85.3096)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestNewOpenWeatherConnector_MissingBaseURL(t *testing.T) {
	settings := &config.WeatherSettings{}
	_, err := NewOpenWeatherConnector(settings, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

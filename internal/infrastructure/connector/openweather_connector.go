package connector

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"
)

// openWeatherResponse mirrors the fields of the OpenWeather current weather
// payload that the connector consumes.
type openWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Dt int64 `json:"dt"`
}

type openWeatherConnector struct {
	client *resty.Client
	apiKey string
	logger logger.Logger
}

// NewOpenWeatherConnector creates a WeatherConnector backed by the OpenWeather
// current weather API.
func NewOpenWeatherConnector(settings *config.WeatherSettings, logger logger.Logger) (weather.WeatherConnector, error) {
	if settings.BaseURL == "" {
		return nil, fmt.Errorf("weather connector requires a base URL")
	}

	client := resty.New()
	client.SetBaseURL(settings.BaseURL)
	client.SetTimeout(30 * time.Second)

	return &openWeatherConnector{
		client: client,
		apiKey: settings.APIKey,
		logger: logger,
	}, nil
}

func (c *openWeatherConnector) FetchCurrent(ctx context.Context, locationName string, lat, lon float64) (*weather.Observation, error) {
	var payload openWeatherResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   fmt.Sprintf("%.4f", lat),
			"lon":   fmt.Sprintf("%.4f", lon),
			"appid": c.apiKey,
			"units": "metric",
		}).
		SetResult(&payload).
		Get("/data/2.5/weather")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather for %s: %w", locationName, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weather API returned status %d for %s", resp.StatusCode(), locationName)
	}

	condition := "Unknown"
	if len(payload.Weather) > 0 {
		condition = payload.Weather[0].Main
	}

	observationTime := time.Now()
	if payload.Dt > 0 {
		observationTime = time.Unix(payload.Dt, 0)
	}

	feelsLike := payload.Main.FeelsLike
	// OpenWeather reports wind in m/s
	windKph := payload.Wind.Speed * 3.6

	observation := &weather.Observation{
		ID:                 uuid.NewString(),
		LocationName:       locationName,
		Latitude:           lat,
		Longitude:          lon,
		ObservationTime:    observationTime,
		TemperatureCelsius: payload.Main.Temp,
		FeelsLikeCelsius:   &feelsLike,
		HumidityPercent:    payload.Main.Humidity,
		RainfallMm:         payload.Rain.OneHour,
		WindSpeedKph:       &windKph,
		Condition:          condition,
		Source:             weather.DefaultSource,
		CreatedAt:          time.Now(),
	}

	c.logger.Info("Fetched weather observation for ", locationName)
	return observation, nil
}

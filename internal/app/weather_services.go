package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"
)

// weatherService implements the WeatherService interface for weather lookups
// and farming advisories
type weatherService struct {
	observationRepo  weather.ObservationRepository
	weatherConnector weather.WeatherConnector
	settings         config.WeatherSettings
	logger           logger.Logger
}

// NewWeatherService creates a new instance of WeatherService. weatherConnector
// may be nil, in which case only stored observations are served.
func NewWeatherService(
	observationRepo weather.ObservationRepository,
	weatherConnector weather.WeatherConnector,
	settings config.WeatherSettings,
	logger logger.Logger,
) (weather.WeatherService, error) {
	return &weatherService{
		observationRepo:  observationRepo,
		weatherConnector: weatherConnector,
		settings:         settings,
		logger:           logger,
	}, nil
}

// Current returns a fresh observation for a location, refetching from the
// upstream provider when the stored one is older than the freshness window.
func (s *weatherService) Current(ctx context.Context, locationName string) (*weather.Observation, error) {
	lat, lon := s.settings.DefaultLat, s.settings.DefaultLon
	if locationName == "" {
		locationName = s.settings.DefaultLocation
	}

	stored, err := s.observationRepo.Newest(ctx, locationName)
	if err != nil {
		return nil, err
	}
	if stored != nil && time.Since(stored.ObservationTime) <= s.settings.FreshnessTTL {
		return stored, nil
	}

	if s.weatherConnector == nil {
		if stored != nil {
			return stored, nil
		}
		return nil, fmt.Errorf("no observation stored for %s and no weather connector configured", locationName)
	}

	fetched, err := s.weatherConnector.FetchCurrent(ctx, locationName, lat, lon)
	if err != nil {
		// Serve the stale observation rather than failing outright
		if stored != nil {
			s.logger.Warn("Weather fetch failed, serving stored observation: ", err)
			return stored, nil
		}
		return nil, err
	}

	if err := s.observationRepo.Create(ctx, fetched); err != nil {
		return nil, fmt.Errorf("failed to store observation: %w", err)
	}

	return fetched, nil
}

func (s *weatherService) History(ctx context.Context, query *weather.HistoryQuery) ([]*weather.Observation, error) {
	if query == nil {
		query = &weather.HistoryQuery{Limit: config.DefaultPageSize}
	}
	if query.LocationName == "" {
		query.LocationName = s.settings.DefaultLocation
	}
	return s.observationRepo.List(ctx, query)
}

// Record validates and stores a manually ingested observation.
func (s *weatherService) Record(ctx context.Context, observation *weather.Observation) error {
	if observation.ID == "" {
		observation.ID = uuid.NewString()
	}
	if observation.ObservationTime.IsZero() {
		observation.ObservationTime = time.Now()
	}
	if observation.CreatedAt.IsZero() {
		observation.CreatedAt = time.Now()
	}
	return s.observationRepo.Create(ctx, observation)
}

// Advise derives farming recommendations from the current observation in the
// requested language.
func (s *weatherService) Advise(ctx context.Context, locationName, language string) (*weather.Advisory, error) {
	observation, err := s.Current(ctx, locationName)
	if err != nil {
		return nil, err
	}

	hindi := language == config.LanguageHindi
	var messages []string

	if observation.IsRainy() {
		if hindi {
			messages = append(messages, "बारिश की संभावना है। कीटनाशक या उर्वरक का छिड़काव स्थगित करें और जल निकासी की व्यवस्था जांचें।")
		} else {
			messages = append(messages, "Rain is expected. Postpone pesticide or fertilizer spraying and check field drainage.")
		}
	}
	if observation.IsHot() {
		if hindi {
			messages = append(messages, "तापमान अधिक है। फसलों की सिंचाई सुबह या शाम को करें और मल्चिंग का उपयोग करें।")
		} else {
			messages = append(messages, "Temperatures are high. Irrigate crops in the early morning or evening and use mulching.")
		}
	}
	if observation.IsCold() {
		if hindi {
			messages = append(messages, "तापमान कम है। पाले से बचाव के लिए हल्की सिंचाई करें और फसलों को ढकें।")
		} else {
			messages = append(messages, "Temperatures are low. Apply light irrigation against frost and cover sensitive crops.")
		}
	}
	if observation.HumidityLevel() == weather.HumidityVeryHigh {
		if hindi {
			messages = append(messages, "नमी बहुत अधिक है। फफूंद रोगों के लिए फसलों की निगरानी करें।")
		} else {
			messages = append(messages, "Humidity is very high. Monitor crops for fungal diseases.")
		}
	}
	if len(messages) == 0 {
		if hindi {
			messages = append(messages, "मौसम सामान्य है। नियमित कृषि कार्य जारी रखें।")
		} else {
			messages = append(messages, "Weather conditions are normal. Continue regular farm operations.")
		}
	}

	return &weather.Advisory{
		Observation: observation,
		Messages:    messages,
	}, nil
}

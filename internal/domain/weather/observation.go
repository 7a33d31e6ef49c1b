package weather

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultSource is the upstream provider observations come from.
const DefaultSource = "openweathermap"

// Humidity level bands.
const (
	HumidityVeryLow  = "very_low"
	HumidityLow      = "low"
	HumidityModerate = "moderate"
	HumidityHigh     = "high"
	HumidityVeryHigh = "very_high"
)

// rainyConditions are condition substrings that indicate rain.
var rainyConditions = []string{"rain", "drizzle", "thunderstorm", "showers"}

// Observation entity: one weather sample for a location.
type Observation struct {
	ID                 string  `validate:"required,uuid4"`
	LocationName       string  `validate:"required,min=1,max=255"`
	Latitude           float64 `validate:"min=-90,max=90"`
	Longitude          float64 `validate:"min=-180,max=180"`
	ObservationTime    time.Time `validate:"required"`
	TemperatureCelsius float64
	FeelsLikeCelsius   *float64
	HumidityPercent    int `validate:"min=0,max=100"`
	RainfallMm         float64
	WindSpeedKph       *float64
	UVIndex            *int
	Condition          string `validate:"required,max=255"`
	ConditionHi        *string
	Source             string `validate:"required,max=100"`
	CreatedAt          time.Time
}

// Validate for validating Observation struct
func (o *Observation) Validate() error {
	validate := validator.New()

	err := validate.Struct(o)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// TemperatureFahrenheit converts the observed temperature to Fahrenheit.
func (o *Observation) TemperatureFahrenheit() float64 {
	return o.TemperatureCelsius*9/5 + 32
}

// IsRainy reports whether the condition indicates rain.
func (o *Observation) IsRainy() bool {
	condition := strings.ToLower(o.Condition)
	for _, rainy := range rainyConditions {
		if strings.Contains(condition, rainy) {
			return true
		}
	}
	return false
}

// IsHot reports whether the temperature is above 35°C.
func (o *Observation) IsHot() bool {
	return o.TemperatureCelsius > 35
}

// IsCold reports whether the temperature is below 15°C.
func (o *Observation) IsCold() bool {
	return o.TemperatureCelsius < 15
}

// HumidityLevel bands the relative humidity into a descriptive level.
func (o *Observation) HumidityLevel() string {
	switch {
	case o.HumidityPercent >= 80:
		return HumidityVeryHigh
	case o.HumidityPercent >= 60:
		return HumidityHigh
	case o.HumidityPercent >= 40:
		return HumidityModerate
	case o.HumidityPercent >= 20:
		return HumidityLow
	default:
		return HumidityVeryLow
	}
}

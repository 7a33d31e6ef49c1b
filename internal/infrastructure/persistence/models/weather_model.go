package models

import (
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"
)

// ObservationModel is the GORM database model for weather samples (infrastructure concern)
type ObservationModel struct {
	ID                 string  `gorm:"primaryKey;type:uuid"`
	LocationName       string  `gorm:"not null;index;type:varchar(255)"`
	Latitude           float64 `gorm:"not null"`
	Longitude          float64 `gorm:"not null"`
	ObservationTime    time.Time `gorm:"not null;index"`
	TemperatureCelsius float64   `gorm:"not null"`
	FeelsLikeCelsius   *float64
	HumidityPercent    int     `gorm:"not null"`
	RainfallMm         float64 `gorm:"not null;default:0"`
	WindSpeedKph       *float64
	UVIndex            *int
	Condition          string  `gorm:"not null;type:varchar(255)"`
	ConditionHi        *string `gorm:"type:varchar(255)"`
	Source             string  `gorm:"not null;type:varchar(100)"`
	CreatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ObservationModel) TableName() string {
	return "weather_data"
}

// ToDomain converts GORM model to domain entity
func (m *ObservationModel) ToDomain() *weather.Observation {
	return &weather.Observation{
		ID:                 m.ID,
		LocationName:       m.LocationName,
		Latitude:           m.Latitude,
		Longitude:          m.Longitude,
		ObservationTime:    m.ObservationTime,
		TemperatureCelsius: m.TemperatureCelsius,
		FeelsLikeCelsius:   m.FeelsLikeCelsius,
		HumidityPercent:    m.HumidityPercent,
		RainfallMm:         m.RainfallMm,
		WindSpeedKph:       m.WindSpeedKph,
		UVIndex:            m.UVIndex,
		Condition:          m.Condition,
		ConditionHi:        m.ConditionHi,
		Source:             m.Source,
		CreatedAt:          m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ObservationModel) FromDomain(o *weather.Observation) {
	m.ID = o.ID
	m.LocationName = o.LocationName
	m.Latitude = o.Latitude
	m.Longitude = o.Longitude
	m.ObservationTime = o.ObservationTime
	m.TemperatureCelsius = o.TemperatureCelsius
	m.FeelsLikeCelsius = o.FeelsLikeCelsius
	m.HumidityPercent = o.HumidityPercent
	m.RainfallMm = o.RainfallMm
	m.WindSpeedKph = o.WindSpeedKph
	m.UVIndex = o.UVIndex
	m.Condition = o.Condition
	m.ConditionHi = o.ConditionHi
	m.Source = o.Source
	m.CreatedAt = o.CreatedAt
}

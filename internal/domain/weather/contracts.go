package weather

import (
	"context"
	"time"
)

// Advisory is a bilingual set of farming recommendations derived from an
// observation.
type Advisory struct {
	Observation *Observation
	Messages    []string
}

// HistoryQuery filters stored observations.
type HistoryQuery struct {
	LocationName string
	From         time.Time
	To           time.Time
	Limit        int
	Offset       int
}

// WeatherService defines weather operations for the API.
type WeatherService interface {
	// Current returns a fresh observation for a location, fetching from the
	// upstream provider when the stored one is stale. An empty location uses
	// the configured default.
	Current(ctx context.Context, locationName string) (*Observation, error)

	// History lists stored observations for a location and time range.
	History(ctx context.Context, query *HistoryQuery) ([]*Observation, error)

	// Record validates and stores a manually ingested observation.
	Record(ctx context.Context, observation *Observation) error

	// Advise derives farming recommendations from the current observation in
	// the requested language.
	Advise(ctx context.Context, locationName, language string) (*Advisory, error)
}

// ObservationRepository defines the interface for observation persistence.
type ObservationRepository interface {
	Create(ctx context.Context, observation *Observation) error
	// Newest returns the most recent observation for a location, or nil when
	// none is stored.
	Newest(ctx context.Context, locationName string) (*Observation, error)
	List(ctx context.Context, query *HistoryQuery) ([]*Observation, error)
}

// WeatherConnector fetches a live observation from an upstream provider.
type WeatherConnector interface {
	FetchCurrent(ctx context.Context, locationName string, lat, lon float64) (*Observation, error)
}

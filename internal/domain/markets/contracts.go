package markets

import (
	"context"
)

// PriceService defines market price operations.
type PriceService interface {
	// List retrieves price quotes considering a query filter when set.
	List(ctx context.Context, query *PriceQuery) ([]*CropPrice, error)

	// Latest returns the newest quote per market for a commodity.
	Latest(ctx context.Context, commodityName string) ([]*CropPrice, error)

	// Ingest validates and stores a quote.
	Ingest(ctx context.Context, price *CropPrice) error

	// RefreshFromSource pulls quotes for the given commodities from the
	// market data connector and stores them. It returns how many quotes
	// were stored.
	RefreshFromSource(ctx context.Context, commodities []string) (int, error)
}

// AlertService defines price alert operations.
type AlertService interface {
	Create(ctx context.Context, alert *PriceAlert) error
	ListByUser(ctx context.Context, userID string) ([]*PriceAlert, error)
	DeleteByID(ctx context.Context, alertID string) error

	// EvaluateForUser checks all active alerts of a user against the latest
	// stored quotes and returns the alerts that fire.
	EvaluateForUser(ctx context.Context, userID string) ([]*PriceAlert, error)
}

// PriceRepository defines the interface for crop price persistence.
type PriceRepository interface {
	Create(ctx context.Context, price *CropPrice) error
	List(ctx context.Context, query *PriceQuery) ([]*CropPrice, error)
	// LatestByCommodity returns the newest quote per market for a commodity.
	LatestByCommodity(ctx context.Context, commodityName string) ([]*CropPrice, error)
	// LatestTwo returns up to the two newest quotes for a commodity/market
	// pair, newest first. Used for change_percent alert evaluation.
	LatestTwo(ctx context.Context, commodityName, marketName string) ([]*CropPrice, error)
}

// AlertRepository defines the interface for price alert persistence.
type AlertRepository interface {
	Create(ctx context.Context, alert *PriceAlert) error
	ListByUser(ctx context.Context, userID string) ([]*PriceAlert, error)
	GetByID(ctx context.Context, alertID string) (*PriceAlert, error)
	DeleteByID(ctx context.Context, alertID string) error
}

// MarketConnector pulls commodity quotes from an external market data source.
type MarketConnector interface {
	FetchPrices(ctx context.Context, commodityName string) ([]*CropPrice, error)
}

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"
)

// priceService implements the PriceService interface for mandi price quotes
type priceService struct {
	priceRepo       markets.PriceRepository
	marketConnector markets.MarketConnector
	logger          logger.Logger
}

// NewPriceService creates a new instance of PriceService. marketConnector may
// be nil when no upstream market feed is configured.
func NewPriceService(
	priceRepo markets.PriceRepository,
	marketConnector markets.MarketConnector,
	logger logger.Logger,
) (markets.PriceService, error) {
	return &priceService{
		priceRepo:       priceRepo,
		marketConnector: marketConnector,
		logger:          logger,
	}, nil
}

func (s *priceService) List(ctx context.Context, query *markets.PriceQuery) ([]*markets.CropPrice, error) {
	if query == nil {
		query = markets.NewPriceQuery()
	}
	return s.priceRepo.List(ctx, query)
}

func (s *priceService) Latest(ctx context.Context, commodityName string) ([]*markets.CropPrice, error) {
	if commodityName == "" {
		return nil, fmt.Errorf("commodity name must not be empty")
	}
	return s.priceRepo.LatestByCommodity(ctx, commodityName)
}

// Ingest validates and stores a manually supplied quote.
func (s *priceService) Ingest(ctx context.Context, price *markets.CropPrice) error {
	if price.ID == "" {
		price.ID = uuid.NewString()
	}
	if price.PriceUnit == "" {
		price.PriceUnit = markets.DefaultPriceUnit
	}
	if price.Source == "" {
		price.Source = markets.SourceManual
	}
	if price.CreatedAt.IsZero() {
		price.CreatedAt = time.Now()
	}
	return s.priceRepo.Create(ctx, price)
}

// RefreshFromSource pulls quotes for the given commodities from the market
// data connector and stores them.
func (s *priceService) RefreshFromSource(ctx context.Context, commodities []string) (int, error) {
	if s.marketConnector == nil {
		return 0, fmt.Errorf("market connector is not configured")
	}

	stored := 0
	for _, commodity := range commodities {
		prices, err := s.marketConnector.FetchPrices(ctx, commodity)
		if err != nil {
			return stored, fmt.Errorf("failed to refresh %s: %w", commodity, err)
		}
		for _, price := range prices {
			if err := s.priceRepo.Create(ctx, price); err != nil {
				s.logger.Warn("Skipping price record for ", price.MarketName, ": ", err)
				continue
			}
			stored++
		}
	}

	s.logger.Info("Refreshed ", stored, " price records from source")
	return stored, nil
}

// alertService implements the AlertService interface for price alerts
type alertService struct {
	alertRepo markets.AlertRepository
	priceRepo markets.PriceRepository
	logger    logger.Logger
}

// NewAlertService creates a new instance of AlertService
func NewAlertService(
	alertRepo markets.AlertRepository,
	priceRepo markets.PriceRepository,
	logger logger.Logger,
) (markets.AlertService, error) {
	return &alertService{
		alertRepo: alertRepo,
		priceRepo: priceRepo,
		logger:    logger,
	}, nil
}

func (s *alertService) Create(ctx context.Context, alert *markets.PriceAlert) error {
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	alert.IsActive = true
	return s.alertRepo.Create(ctx, alert)
}

func (s *alertService) ListByUser(ctx context.Context, userID string) ([]*markets.PriceAlert, error) {
	return s.alertRepo.ListByUser(ctx, userID)
}

func (s *alertService) DeleteByID(ctx context.Context, alertID string) error {
	return s.alertRepo.DeleteByID(ctx, alertID)
}

// EvaluateForUser checks all active alerts of a user against the latest
// stored quotes and returns the alerts that fire.
func (s *alertService) EvaluateForUser(ctx context.Context, userID string) ([]*markets.PriceAlert, error) {
	alerts, err := s.alertRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var fired []*markets.PriceAlert
	for _, alert := range alerts {
		if !alert.IsActive {
			continue
		}

		quotes, err := s.priceRepo.LatestTwo(ctx, alert.CommodityName, alert.MarketName)
		if err != nil {
			return nil, err
		}
		if len(quotes) == 0 {
			continue
		}

		current := quotes[0]
		var previous *markets.CropPrice
		if len(quotes) > 1 {
			previous = quotes[1]
		}

		if alert.Evaluate(current, previous) {
			fired = append(fired, alert)
		}
	}

	return fired, nil
}

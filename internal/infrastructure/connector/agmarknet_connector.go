package connector

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"
)

// arrivalDateLayout is the date format used by the Agmarknet feed.
const arrivalDateLayout = "02/01/2006"

// agmarknetResponse mirrors the data.gov.in mandi price payload.
type agmarknetResponse struct {
	Records []struct {
		State       string `json:"state"`
		District    string `json:"district"`
		Market      string `json:"market"`
		Commodity   string `json:"commodity"`
		Variety     string `json:"variety"`
		Grade       string `json:"grade"`
		ArrivalDate string `json:"arrival_date"`
		MinPrice    string `json:"min_price"`
		MaxPrice    string `json:"max_price"`
		ModalPrice  string `json:"modal_price"`
	} `json:"records"`
}

type agmarknetConnector struct {
	client *resty.Client
	apiKey string
	logger logger.Logger
}

// NewAgmarknetConnector creates a MarketConnector backed by the Agmarknet
// mandi price feed on data.gov.in.
func NewAgmarknetConnector(settings *config.MarketSettings, logger logger.Logger) (markets.MarketConnector, error) {
	if settings.BaseURL == "" {
		return nil, fmt.Errorf("market connector requires a base URL")
	}

	client := resty.New()
	client.SetBaseURL(settings.BaseURL)
	client.SetTimeout(30 * time.Second)

	return &agmarknetConnector{
		client: client,
		apiKey: settings.APIKey,
		logger: logger,
	}, nil
}

func (c *agmarknetConnector) FetchPrices(ctx context.Context, commodityName string) ([]*markets.CropPrice, error) {
	var payload agmarknetResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api-key":            c.apiKey,
			"format":             "json",
			"filters[commodity]": commodityName,
		}).
		SetResult(&payload).
		Get("/resource/9ef84268-d588-465a-a308-a864a43d0070")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices for %s: %w", commodityName, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("market API returned status %d for %s", resp.StatusCode(), commodityName)
	}

	var prices []*markets.CropPrice
	for _, record := range payload.Records {
		minPrice, err := decimal.NewFromString(record.MinPrice)
		if err != nil {
			c.logger.Warn("Skipping record with invalid min price for ", record.Market)
			continue
		}
		maxPrice, err := decimal.NewFromString(record.MaxPrice)
		if err != nil {
			c.logger.Warn("Skipping record with invalid max price for ", record.Market)
			continue
		}
		modalPrice, err := decimal.NewFromString(record.ModalPrice)
		if err != nil {
			c.logger.Warn("Skipping record with invalid modal price for ", record.Market)
			continue
		}

		arrivalDate, err := time.Parse(arrivalDateLayout, record.ArrivalDate)
		if err != nil {
			arrivalDate = time.Now().Truncate(24 * time.Hour)
		}

		price := &markets.CropPrice{
			ID:            uuid.NewString(),
			CommodityName: record.Commodity,
			MarketName:    record.Market,
			State:         record.State,
			MinPrice:      minPrice,
			MaxPrice:      maxPrice,
			ModalPrice:    modalPrice,
			PriceUnit:     markets.DefaultPriceUnit,
			ArrivalDate:   arrivalDate,
			Source:        markets.SourceAgmarknet,
			CreatedAt:     time.Now(),
		}
		if record.Variety != "" {
			variety := record.Variety
			price.Variety = &variety
		}
		if record.Grade != "" {
			grade := record.Grade
			price.Grade = &grade
		}

		prices = append(prices, price)
	}

	c.logger.Info("Fetched ", len(prices), " price records for ", commodityName)
	return prices, nil
}

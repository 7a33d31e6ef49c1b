package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/utils"
)

// PriceHandler defines the interface for handling mandi price quotes and
// price alerts
type PriceHandler interface {
	List(ctx *gin.Context)
	Latest(ctx *gin.Context)
	Ingest(ctx *gin.Context)
	Refresh(ctx *gin.Context)
	CreateAlert(ctx *gin.Context)
	ListAlerts(ctx *gin.Context)
	DeleteAlert(ctx *gin.Context)
	EvaluateAlerts(ctx *gin.Context)
}

// priceHandler struct holds the services
type priceHandler struct {
	priceService markets.PriceService
	alertService markets.AlertService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(priceService markets.PriceService, alertService markets.AlertService) PriceHandler {
	return &priceHandler{
		priceService: priceService,
		alertService: alertService,
	}
}

// List fetches price quotes optionally with query parameters
func (handler *priceHandler) List(ctx *gin.Context) {
	query := markets.NewPriceQuery()

	if commodity := ctx.Query("commodity"); len(commodity) > 0 {
		query.CommodityName = commodity
	}
	if market := ctx.Query("market"); len(market) > 0 {
		query.MarketName = market
	}
	if state := ctx.Query("state"); len(state) > 0 {
		query.State = state
	}
	if from := ctx.Query("date_from"); len(from) > 0 {
		arrivalFrom, err := time.Parse("2006-01-02", from)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "date_from must be YYYY-MM-DD"})
			return
		}
		query.ArrivalFrom = arrivalFrom
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}
	if sortBy := ctx.Query("sort_by"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sort_order"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	prices, err := handler.priceService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error fetching prices: %v", err)})
		return
	}

	responses := make([]PriceResponse, len(prices))
	for i, price := range prices {
		responses[i] = NewPriceResponse(price)
	}
	ctx.JSON(http.StatusOK, responses)
}

// Latest returns the newest quote per market for a commodity
func (handler *priceHandler) Latest(ctx *gin.Context) {
	commodity := ctx.Query("commodity")
	if commodity == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "commodity query parameter is required"})
		return
	}

	prices, err := handler.priceService.Latest(ctx, commodity)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error fetching latest prices: %v", err)})
		return
	}

	responses := make([]PriceResponse, len(prices))
	for i, price := range prices {
		responses[i] = NewPriceResponse(price)
	}
	ctx.JSON(http.StatusOK, responses)
}

// Ingest validates and stores a quote
func (handler *priceHandler) Ingest(ctx *gin.Context) {
	var request IngestPriceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	price, err := priceFromRequest(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	if err := handler.priceService.Ingest(ctx, price); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error storing price: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, NewPriceResponse(price))
}

// priceFromRequest converts the ingest payload to a domain quote.
func priceFromRequest(request *IngestPriceRequest) (*markets.CropPrice, error) {
	minPrice, err := decimal.NewFromString(request.MinPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid min_price: %w", err)
	}
	maxPrice, err := decimal.NewFromString(request.MaxPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid max_price: %w", err)
	}
	modalPrice, err := decimal.NewFromString(request.ModalPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid modal_price: %w", err)
	}
	arrivalDate, err := time.Parse("2006-01-02", request.ArrivalDate)
	if err != nil {
		return nil, fmt.Errorf("arrival_date must be YYYY-MM-DD")
	}

	state := request.State
	if state == "" {
		state = config.DefaultState
	}

	return &markets.CropPrice{
		CommodityName:   request.CommodityName,
		CommodityNameHi: request.CommodityNameHi,
		Variety:         request.Variety,
		Grade:           request.Grade,
		MarketName:      request.MarketName,
		MarketNameHi:    request.MarketNameHi,
		State:           state,
		MinPrice:        minPrice,
		MaxPrice:        maxPrice,
		ModalPrice:      modalPrice,
		PriceUnit:       request.PriceUnit,
		ArrivalDate:     arrivalDate,
		Source:          request.Source,
	}, nil
}

// Refresh pulls quotes for the named commodities from the market feed
func (handler *priceHandler) Refresh(ctx *gin.Context) {
	var request RefreshPricesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	stored, err := handler.priceService.RefreshFromSource(ctx, request.Commodities)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, ErrorResponse{Message: fmt.Sprintf("error refreshing prices: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("stored %d price records", stored)})
}

// CreateAlert subscribes a user to a price alert
func (handler *priceHandler) CreateAlert(ctx *gin.Context) {
	var request CreateAlertRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	threshold, err := decimal.NewFromString(request.ThresholdValue)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid threshold_value: %v", err)})
		return
	}

	alert := &markets.PriceAlert{
		UserID:         request.UserID,
		CommodityName:  request.CommodityName,
		MarketName:     request.MarketName,
		AlertType:      request.AlertType,
		ThresholdValue: threshold,
	}
	if request.ChangePercentage != nil {
		pct, err := decimal.NewFromString(*request.ChangePercentage)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid change_percentage: %v", err)})
			return
		}
		alert.ChangePercentage = &pct
	}

	if err := handler.alertService.Create(ctx, alert); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error creating alert: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, NewAlertResponse(alert))
}

// ListAlerts lists the alerts of a user
func (handler *priceHandler) ListAlerts(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "user_id query parameter is required"})
		return
	}

	alerts, err := handler.alertService.ListByUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error fetching alerts: %v", err)})
		return
	}

	responses := make([]AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = NewAlertResponse(alert)
	}
	ctx.JSON(http.StatusOK, responses)
}

// DeleteAlert removes an alert
func (handler *priceHandler) DeleteAlert(ctx *gin.Context) {
	alertID := ctx.Param("id")
	if err := handler.alertService.DeleteByID(ctx, alertID); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error deleting alert: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted alert %s", alertID)})
}

// EvaluateAlerts returns the user's alerts that fire against current quotes
func (handler *priceHandler) EvaluateAlerts(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "user_id query parameter is required"})
		return
	}

	fired, err := handler.alertService.EvaluateForUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error evaluating alerts: %v", err)})
		return
	}

	responses := make([]AlertResponse, len(fired))
	for i, alert := range fired {
		responses[i] = NewAlertResponse(alert)
	}
	ctx.JSON(http.StatusOK, responses)
}

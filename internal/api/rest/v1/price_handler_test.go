//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testCropPrice() *markets.CropPrice {
	return &markets.CropPrice{
		ID:            "d1f8c2e0-9c3d-4a7e-8f21-0a1b2c3d4e5f",
		CommodityName: "Potato",
		MarketName:    "Ranchi",
		State:         "Jharkhand",
		MinPrice:      decimal.NewFromInt(1000),
		MaxPrice:      decimal.NewFromInt(1500),
		ModalPrice:    decimal.NewFromInt(1200),
		PriceUnit:     "per_quintal",
		ArrivalDate:   time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		Source:        "manual",
	}
}

func TestPriceHandler_List_Success(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	mockPriceService.On("List", mock.Anything, mock.Anything).Return([]*markets.CropPrice{testCropPrice()}, nil)

	req, _ := http.NewRequest("GET", "/prices?commodity=Potato&limit=10", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Potato")
	assert.Contains(t, w.Body.String(), "1200")
	mockPriceService.AssertExpectations(t)
}

func TestPriceHandler_List_BadDateFrom_Error(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	req, _ := http.NewRequest("GET", "/prices?date_from=25-08-2026", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "date_from must be YYYY-MM-DD")
	mockPriceService.AssertNotCalled(t, "List")
}

func TestPriceHandler_Latest_RequiresCommodity(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	req, _ := http.NewRequest("GET", "/prices/latest", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Latest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "commodity query parameter is required")
	mockPriceService.AssertNotCalled(t, "Latest")
}

func TestPriceHandler_Latest_Success(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	mockPriceService.On("Latest", mock.Anything, "Potato").Return([]*markets.CropPrice{testCropPrice()}, nil)

	req, _ := http.NewRequest("GET", "/prices/latest?commodity=Potato", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Latest(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ranchi")
	mockPriceService.AssertExpectations(t)
}

func TestPriceHandler_Ingest_Success(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	mockPriceService.On("Ingest", mock.Anything, mock.Anything).Return(nil)

	body := bytes.NewBufferString(`{
		"commodity_name": "Potato",
		"market_name": "Ranchi",
		"min_price": "1000",
		"max_price": "1500",
		"modal_price": "1200",
		"arrival_date": "2026-08-25"
	}`)
	req, _ := http.NewRequest("POST", "/prices", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Ingest(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Jharkhand")
	mockPriceService.AssertExpectations(t)
}

func TestPriceHandler_Ingest_BadPrice_Error(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	body := bytes.NewBufferString(`{
		"commodity_name": "Potato",
		"market_name": "Ranchi",
		"min_price": "one thousand",
		"max_price": "1500",
		"modal_price": "1200",
		"arrival_date": "2026-08-25"
	}`)
	req, _ := http.NewRequest("POST", "/prices", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Ingest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid min_price")
	mockPriceService.AssertNotCalled(t, "Ingest")
}

func TestPriceHandler_Refresh_Success(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	mockPriceService.On("RefreshFromSource", mock.Anything, []string{"Potato", "Rice"}).Return(7, nil)

	body := bytes.NewBufferString(`{"commodities": ["Potato", "Rice"]}`)
	req, _ := http.NewRequest("POST", "/prices/refresh", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Refresh(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "stored 7 price records")
	mockPriceService.AssertExpectations(t)
}

func TestPriceHandler_Refresh_ConnectorFailure_BadGateway(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	mockPriceService.On("RefreshFromSource", mock.Anything, []string{"Potato"}).
		Return(0, errors.New("market connector is not configured"))

	body := bytes.NewBufferString(`{"commodities": ["Potato"]}`)
	req, _ := http.NewRequest("POST", "/prices/refresh", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Refresh(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	mockPriceService.AssertExpectations(t)
}

func TestPriceHandler_CreateAlert_Success(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	mockAlertService.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := bytes.NewBufferString(`{
		"user_id": "a1f8c2e0-9c3d-4a7e-8f21-0a1b2c3d4e5f",
		"commodity_name": "Potato",
		"market_name": "Ranchi",
		"alert_type": "above",
		"threshold_value": "1300"
	}`)
	req, _ := http.NewRequest("POST", "/prices/alerts", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.CreateAlert(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "1300")
	mockAlertService.AssertExpectations(t)
}

func TestPriceHandler_CreateAlert_BadAlertType_Error(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	body := bytes.NewBufferString(`{
		"user_id": "a1f8c2e0-9c3d-4a7e-8f21-0a1b2c3d4e5f",
		"commodity_name": "Potato",
		"market_name": "Ranchi",
		"alert_type": "sideways",
		"threshold_value": "1300"
	}`)
	req, _ := http.NewRequest("POST", "/prices/alerts", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.CreateAlert(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAlertService.AssertNotCalled(t, "Create")
}

func TestPriceHandler_ListAlerts_RequiresUserID(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	req, _ := http.NewRequest("GET", "/prices/alerts", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListAlerts(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAlertService.AssertNotCalled(t, "ListByUser")
}

func TestPriceHandler_EvaluateAlerts_Success(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	userID := "a1f8c2e0-9c3d-4a7e-8f21-0a1b2c3d4e5f"
	fired := []*markets.PriceAlert{{
		ID:             "e1f8c2e0-9c3d-4a7e-8f21-0a1b2c3d4e5f",
		UserID:         userID,
		CommodityName:  "Potato",
		MarketName:     "Ranchi",
		AlertType:      "above",
		ThresholdValue: decimal.NewFromInt(1300),
		IsActive:       true,
	}}
	mockAlertService.On("EvaluateForUser", mock.Anything, userID).Return(fired, nil)

	req, _ := http.NewRequest("GET", "/prices/alerts/evaluate?user_id="+userID, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.EvaluateAlerts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "above")
	mockAlertService.AssertExpectations(t)
}

func TestPriceHandler_DeleteAlert_Success(t *testing.T) {
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	handler := NewPriceHandler(mockPriceService, mockAlertService)

	mockAlertService.On("DeleteByID", mock.Anything, "alert-1").Return(nil)

	req, _ := http.NewRequest("DELETE", "/prices/alerts/alert-1", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "alert-1"}}

	handler.DeleteAlert(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted alert alert-1")
	mockAlertService.AssertExpectations(t)
}

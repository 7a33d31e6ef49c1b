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

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testObservation() *weather.Observation {
	return &weather.Observation{
		ID:                 "f1f8c2e0-9c3d-4a7e-8f21-0a1b2c3d4e5f",
		LocationName:       "Ranchi",
		Latitude:           23.3441,
		Longitude:          85.3096,
		ObservationTime:    time.Now(),
		TemperatureCelsius: 28.5,
		HumidityPercent:    65,
		Condition:          "Clear",
		Source:             "openweathermap",
	}
}

func TestWeatherHandler_Current_Success(t *testing.T) {
	mockWeatherService := new(MockWeatherService)
	handler := NewWeatherHandler(mockWeatherService)

	mockWeatherService.On("Current", mock.Anything, "Ranchi").Return(testObservation(), nil)

	req, _ := http.NewRequest("GET", "/weather/current?location=Ranchi", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Current(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ranchi")
	assert.Contains(t, w.Body.String(), "temperature_fahrenheit")
	mockWeatherService.AssertExpectations(t)
}

func TestWeatherHandler_Current_UpstreamFailure_BadGateway(t *testing.T) {
	mockWeatherService := new(MockWeatherService)
	handler := NewWeatherHandler(mockWeatherService)

	mockWeatherService.On("Current", mock.Anything, "").Return(nil, errors.New("weather connector is not configured"))

	req, _ := http.NewRequest("GET", "/weather/current", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Current(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	mockWeatherService.AssertExpectations(t)
}

func TestWeatherHandler_History_Success(t *testing.T) {
	mockWeatherService := new(MockWeatherService)
	handler := NewWeatherHandler(mockWeatherService)

	mockWeatherService.On("History", mock.Anything, mock.Anything).
		Return([]*weather.Observation{testObservation()}, nil)

	req, _ := http.NewRequest("GET", "/weather/history?location=Ranchi&limit=5", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.History(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ranchi")
	mockWeatherService.AssertExpectations(t)
}

func TestWeatherHandler_History_BadFrom_Error(t *testing.T) {
	mockWeatherService := new(MockWeatherService)
	handler := NewWeatherHandler(mockWeatherService)

	req, _ := http.NewRequest("GET", "/weather/history?from=yesterday", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.History(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "from must be RFC3339")
	mockWeatherService.AssertNotCalled(t, "History")
}

func TestWeatherHandler_Record_Success(t *testing.T) {
	mockWeatherService := new(MockWeatherService)
	handler := NewWeatherHandler(mockWeatherService)

	mockWeatherService.On("Record", mock.Anything, mock.Anything).Return(nil)

	body := bytes.NewBufferString(`{
		"location_name": "Ranchi",
		"latitude": 23.3441,
		"longitude": 85.3096,
		"temperature_celsius": 28.5,
		"humidity_percent": 65,
		"condition": "Clear"
	}`)
	req, _ := http.NewRequest("POST", "/weather", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Record(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "manual")
	mockWeatherService.AssertExpectations(t)
}

func TestWeatherHandler_Record_MissingCondition_Error(t *testing.T) {
	mockWeatherService := new(MockWeatherService)
	handler := NewWeatherHandler(mockWeatherService)

	body := bytes.NewBufferString(`{"location_name": "Ranchi", "temperature_celsius": 28.5}`)
	req, _ := http.NewRequest("POST", "/weather", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Record(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockWeatherService.AssertNotCalled(t, "Record")
}

func TestWeatherHandler_Advisory_Success(t *testing.T) {
	mockWeatherService := new(MockWeatherService)
	handler := NewWeatherHandler(mockWeatherService)

	advisory := &weather.Advisory{
		Observation: testObservation(),
		Messages:    []string{"Weather conditions are normal. Continue regular farming activities."},
	}
	mockWeatherService.On("Advise", mock.Anything, "Ranchi", "en").Return(advisory, nil)

	req, _ := http.NewRequest("GET", "/weather/advisory?location=Ranchi", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Advisory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "regular farming activities")
	mockWeatherService.AssertExpectations(t)
}

func TestWeatherHandler_Advisory_Hindi(t *testing.T) {
	mockWeatherService := new(MockWeatherService)
	handler := NewWeatherHandler(mockWeatherService)

	advisory := &weather.Advisory{
		Observation: testObservation(),
		Messages:    []string{"मौसम सामान्य है। नियमित कृषि कार्य जारी रखें।"},
	}
	mockWeatherService.On("Advise", mock.Anything, "Ranchi", "hi").Return(advisory, nil)

	req, _ := http.NewRequest("GET", "/weather/advisory?location=Ranchi&language=hi", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Advisory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "मौसम सामान्य है")
	mockWeatherService.AssertExpectations(t)
}

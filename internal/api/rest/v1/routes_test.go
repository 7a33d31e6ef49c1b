//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockChatService := new(MockChatService)
	mockUserService := new(MockUserService)
	mockPriceService := new(MockPriceService)
	mockAlertService := new(MockAlertService)
	mockWeatherService := new(MockWeatherService)
	mockSchemeService := new(MockSchemeService)
	mockApplicationService := new(MockApplicationService)

	r := gin.Default()

	// Setup mocks to return nil
	mockChatService.On("History", mock.Anything, mock.Anything).Return(nil, nil)
	mockChatService.On("Sessions", mock.Anything, mock.Anything).Return(nil, nil)
	mockPriceService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockWeatherService.On("Current", mock.Anything, mock.Anything).Return(testObservation(), nil)
	mockWeatherService.On("Advise", mock.Anything, mock.Anything, mock.Anything).
		Return(&weather.Advisory{Observation: testObservation()}, nil)
	mockWeatherService.On("History", mock.Anything, mock.Anything).Return(nil, nil)
	mockSchemeService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockSchemeService.On("GetByCode", mock.Anything, mock.Anything).Return(testScheme(), nil)

	SetupRoutes(r, mockChatService, mockUserService, mockPriceService, mockAlertService, mockWeatherService, mockSchemeService, mockApplicationService)

	// Verify routes are registered by testing they respond (even with errors)
	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/chat"},
		{"GET", "/api/v1/chat/sessions"},
		{"GET", "/api/v1/chat/health"},
		{"POST", "/api/v1/users"},
		{"GET", "/api/v1/prices"},
		{"POST", "/api/v1/prices/refresh"},
		{"GET", "/api/v1/weather/current"},
		{"GET", "/api/v1/weather/advisory"},
		{"GET", "/api/v1/schemes"},
		{"GET", "/api/v1/schemes/PM-KISAN"},
		{"GET", "/api/v1/schemes/applications"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

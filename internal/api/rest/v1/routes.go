package v1

import (
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/chat"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/schemes"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	chatService chat.ChatService,
	userService users.UserService,
	priceService markets.PriceService,
	alertService markets.AlertService,
	weatherService weather.WeatherService,
	schemeService schemes.SchemeService,
	applicationService schemes.ApplicationService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Chat Routes
	chatHandler := NewChatHandler(chatService)
	v1.POST("/chat", chatHandler.Send)
	v1.GET("/chat/history/:sessionId", chatHandler.History)
	v1.DELETE("/chat/history/:sessionId", chatHandler.ClearHistory)
	v1.GET("/chat/sessions", chatHandler.Sessions)
	v1.POST("/chat/feedback", chatHandler.Feedback)
	v1.GET("/chat/questions", chatHandler.QuickQuestions)
	v1.GET("/chat/health", chatHandler.Health)

	// User Routes
	userHandler := NewUserHandler(userService)
	v1.POST("/users", userHandler.Register)
	v1.GET("/users", userHandler.GetByPhone)
	v1.GET("/users/:id", userHandler.GetByID)
	v1.PUT("/users/:id", userHandler.UpdateProfile)
	v1.POST("/users/:id/login", userHandler.RecordLogin)
	v1.DELETE("/users/:id", userHandler.DeleteByID)

	// Price Routes
	priceHandler := NewPriceHandler(priceService, alertService)
	v1.GET("/prices", priceHandler.List)
	v1.POST("/prices", priceHandler.Ingest)
	v1.GET("/prices/latest", priceHandler.Latest)
	v1.POST("/prices/refresh", priceHandler.Refresh)
	v1.POST("/prices/alerts", priceHandler.CreateAlert)
	v1.GET("/prices/alerts", priceHandler.ListAlerts)
	v1.GET("/prices/alerts/evaluate", priceHandler.EvaluateAlerts)
	v1.DELETE("/prices/alerts/:id", priceHandler.DeleteAlert)

	// Weather Routes
	weatherHandler := NewWeatherHandler(weatherService)
	v1.GET("/weather/current", weatherHandler.Current)
	v1.GET("/weather/history", weatherHandler.History)
	v1.POST("/weather", weatherHandler.Record)
	v1.GET("/weather/advisory", weatherHandler.Advisory)

	// Scheme Routes
	schemeHandler := NewSchemeHandler(schemeService, applicationService)
	v1.GET("/schemes", schemeHandler.List)
	v1.POST("/schemes", schemeHandler.Upsert)
	v1.GET("/schemes/applications", schemeHandler.ListApplications)
	v1.PATCH("/schemes/applications/:id", schemeHandler.UpdateApplicationStatus)
	v1.GET("/schemes/:code", schemeHandler.GetByCode)
	v1.POST("/schemes/:code/applications", schemeHandler.Apply)
}

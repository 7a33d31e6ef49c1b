//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/assistant"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/chat"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/schemes"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	ChatService        chat.ChatService
	UserService        users.UserService
	PriceService       markets.PriceService
	AlertService       markets.AlertService
	WeatherService     weather.WeatherService
	SchemeService      schemes.SchemeService
	ApplicationService schemes.ApplicationService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration
// tests. External connectors are left unset so the services run on stored
// data and the response catalog only.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	catalog := assistant.NewCatalog(1)

	chatService, err := NewChatService(nil, catalog, dbContext.ConversationRepo, logger)
	require.NoError(t, err, "Failed to create ChatService")

	userService, err := NewUserService(dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create UserService")

	priceService, err := NewPriceService(dbContext.PriceRepo, nil, logger)
	require.NoError(t, err, "Failed to create PriceService")

	alertService, err := NewAlertService(dbContext.AlertRepo, dbContext.PriceRepo, logger)
	require.NoError(t, err, "Failed to create AlertService")

	weatherSettings := config.WeatherSettings{
		DefaultLocation: "Ranchi",
		DefaultLat:      23.3441,
		DefaultLon:      85.3096,
		FreshnessTTL:    15 * time.Minute,
	}
	weatherService, err := NewWeatherService(dbContext.ObservationRepo, nil, weatherSettings, logger)
	require.NoError(t, err, "Failed to create WeatherService")

	schemeService, err := NewSchemeService(dbContext.SchemeRepo, logger)
	require.NoError(t, err, "Failed to create SchemeService")

	applicationService, err := NewApplicationService(dbContext.ApplicationRepo, dbContext.SchemeRepo, dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create ApplicationService")

	return &TestServices{
		ChatService:        chatService,
		UserService:        userService,
		PriceService:       priceService,
		AlertService:       alertService,
		WeatherService:     weatherService,
		SchemeService:      schemeService,
		ApplicationService: applicationService,
		DBContext:          dbContext,
	}
}

//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/chat"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/schemes"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestCommodityPotato = "Potato"
	TestCommodityRice   = "Rice"
	TestMarketRanchi    = "Ranchi"
	TestStateJharkhand  = "Jharkhand"
	TestPhoneNumber     = "+919876543210"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	UserRepo         users.UserRepository
	ConversationRepo chat.ConversationRepository
	PriceRepo        markets.PriceRepository
	AlertRepo        markets.AlertRepository
	ObservationRepo  weather.ObservationRepository
	SchemeRepo       schemes.SchemeRepository
	ApplicationRepo  schemes.ApplicationRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = Migrate(db)
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	conversationRepo, err := NewGormConversationRepository(db, logger)
	require.NoError(t, err, "Failed to create conversation repository")

	priceRepo, err := NewGormPriceRepository(db, logger)
	require.NoError(t, err, "Failed to create price repository")

	alertRepo, err := NewGormAlertRepository(db, logger)
	require.NoError(t, err, "Failed to create alert repository")

	observationRepo, err := NewGormObservationRepository(db, logger)
	require.NoError(t, err, "Failed to create observation repository")

	schemeRepo, err := NewGormSchemeRepository(db, logger)
	require.NoError(t, err, "Failed to create scheme repository")

	applicationRepo, err := NewGormApplicationRepository(db, logger)
	require.NoError(t, err, "Failed to create application repository")

	return &TestContext{
		DB:               db,
		UserRepo:         userRepo,
		ConversationRepo: conversationRepo,
		PriceRepo:        priceRepo,
		AlertRepo:        alertRepo,
		ObservationRepo:  observationRepo,
		SchemeRepo:       schemeRepo,
		ApplicationRepo:  applicationRepo,
	}
}

// CreateTestUser creates a test user with default values
func CreateTestUser(t *testing.T, phoneNumber string) *users.User {
	t.Helper()

	if phoneNumber == "" {
		phoneNumber = TestPhoneNumber
	}

	name := "Test Farmer"
	now := time.Now()
	return &users.User{
		ID:                uuid.NewString(),
		PhoneNumber:       phoneNumber,
		Name:              &name,
		PreferredLanguage: config.LanguageEnglish,
		LocationState:     TestStateJharkhand,
		PrimaryCrops:      []string{"rice", "potato"},
		IsFarmer:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// CreateTestConversation creates a test conversation with default values
func CreateTestConversation(t *testing.T, userID *string, sessionID string) *chat.Conversation {
	t.Helper()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return &chat.Conversation{
		ID:             uuid.NewString(),
		UserID:         userID,
		SessionID:      sessionID,
		Language:       config.LanguageEnglish,
		Message:        "When should I plant potatoes?",
		Response:       "Plant potatoes in October-November for best yield.",
		ContextTags:    []string{"seeds", "harvesting"},
		Timestamp:      time.Now(),
		ResponseTimeMs: 42,
	}
}

// CreateTestPrice creates a test crop price with default values
func CreateTestPrice(t *testing.T, commodityName, marketName string, arrivalDate time.Time) *markets.CropPrice {
	t.Helper()

	if commodityName == "" {
		commodityName = TestCommodityPotato
	}
	if marketName == "" {
		marketName = TestMarketRanchi
	}
	if arrivalDate.IsZero() {
		arrivalDate = time.Now().Truncate(24 * time.Hour)
	}

	return &markets.CropPrice{
		ID:            uuid.NewString(),
		CommodityName: commodityName,
		MarketName:    marketName,
		State:         TestStateJharkhand,
		MinPrice:      decimal.NewFromInt(1000),
		MaxPrice:      decimal.NewFromInt(1500),
		ModalPrice:    decimal.NewFromInt(1200),
		PriceUnit:     markets.DefaultPriceUnit,
		ArrivalDate:   arrivalDate,
		Source:        markets.SourceManual,
		CreatedAt:     time.Now(),
	}
}

// CreateTestAlert creates a test price alert with default values
func CreateTestAlert(t *testing.T, userID, alertType string) *markets.PriceAlert {
	t.Helper()

	alert := &markets.PriceAlert{
		ID:             uuid.NewString(),
		UserID:         userID,
		CommodityName:  TestCommodityPotato,
		MarketName:     TestMarketRanchi,
		AlertType:      alertType,
		ThresholdValue: decimal.NewFromInt(1300),
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
	if alertType == markets.AlertChangePercent {
		pct := decimal.NewFromInt(10)
		alert.ChangePercentage = &pct
	}
	return alert
}

// CreateTestObservation creates a test weather observation with default values
func CreateTestObservation(t *testing.T, locationName string, observationTime time.Time) *weather.Observation {
	t.Helper()

	if locationName == "" {
		locationName = TestMarketRanchi
	}
	if observationTime.IsZero() {
		observationTime = time.Now()
	}

	return &weather.Observation{
		ID:                 uuid.NewString(),
		LocationName:       locationName,
		Latitude:           23.3441,
		Longitude:          85.3096,
		ObservationTime:    observationTime,
		TemperatureCelsius: 28.5,
		HumidityPercent:    65,
		RainfallMm:         0,
		Condition:          "Clear",
		Source:             weather.DefaultSource,
		CreatedAt:          time.Now(),
	}
}

// CreateTestScheme creates a test government scheme with default values
func CreateTestScheme(t *testing.T, schemeCode string) *schemes.Scheme {
	t.Helper()

	if schemeCode == "" {
		schemeCode = "PM-KISAN"
	}

	amount := decimal.NewFromInt(6000)
	frequency := schemes.BenefitAnnual
	now := time.Now()
	return &schemes.Scheme{
		ID:                  uuid.NewString(),
		SchemeCode:          schemeCode,
		Name:                "Pradhan Mantri Kisan Samman Nidhi",
		Description:         "Income support for land holding farmer families.",
		Category:            schemes.CategoryFinancialAssistance,
		BenefitAmount:       &amount,
		BenefitFrequency:    &frequency,
		EligibilityCriteria: "All land holding farmer families.",
		ApplicationProcess:  "Apply online at pmkisan.gov.in or through CSC centers.",
		RequiredDocuments:   []string{"Aadhaar card", "Land records", "Bank account details"},
		IsActive:            true,
		State:               "All India",
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// CreateTestApplication creates a test scheme application with default values
func CreateTestApplication(t *testing.T, userID, schemeID string) *schemes.Application {
	t.Helper()

	return &schemes.Application{
		ID:              uuid.NewString(),
		UserID:          userID,
		SchemeID:        schemeID,
		ApplicationDate: time.Now(),
		Status:          schemes.StatusApplied,
		CreatedAt:       time.Now(),
	}
}

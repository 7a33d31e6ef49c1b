//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/chat"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/schemes"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"
)

// MockChatService is a mock implementation of ChatService
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) SendMessage(ctx context.Context, userID *string, sessionID, message, language string) (*chat.SendResult, error) {
	args := m.Called(ctx, userID, sessionID, message, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chat.SendResult), args.Error(1)
}

func (m *MockChatService) History(ctx context.Context, sessionID string) ([]*chat.Conversation, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chat.Conversation), args.Error(1)
}

func (m *MockChatService) ClearHistory(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockChatService) Sessions(ctx context.Context, userID *string) ([]*chat.SessionInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chat.SessionInfo), args.Error(1)
}

func (m *MockChatService) SubmitFeedback(ctx context.Context, conversationID string, rating int) error {
	args := m.Called(ctx, conversationID, rating)
	return args.Error(0)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, phoneNumber, name, preferredLanguage string) (*users.User, error) {
	args := m.Called(ctx, phoneNumber, name, preferredLanguage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByPhone(ctx context.Context, phoneNumber string) (*users.User, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, update users.ProfileUpdate) (*users.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) RecordLogin(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockPriceService is a mock implementation of PriceService
type MockPriceService struct {
	mock.Mock
}

func (m *MockPriceService) List(ctx context.Context, query *markets.PriceQuery) ([]*markets.CropPrice, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*markets.CropPrice), args.Error(1)
}

func (m *MockPriceService) Latest(ctx context.Context, commodityName string) ([]*markets.CropPrice, error) {
	args := m.Called(ctx, commodityName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*markets.CropPrice), args.Error(1)
}

func (m *MockPriceService) Ingest(ctx context.Context, price *markets.CropPrice) error {
	args := m.Called(ctx, price)
	return args.Error(0)
}

func (m *MockPriceService) RefreshFromSource(ctx context.Context, commodities []string) (int, error) {
	args := m.Called(ctx, commodities)
	return args.Int(0), args.Error(1)
}

// MockAlertService is a mock implementation of AlertService
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) Create(ctx context.Context, alert *markets.PriceAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertService) ListByUser(ctx context.Context, userID string) ([]*markets.PriceAlert, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*markets.PriceAlert), args.Error(1)
}

func (m *MockAlertService) DeleteByID(ctx context.Context, alertID string) error {
	args := m.Called(ctx, alertID)
	return args.Error(0)
}

func (m *MockAlertService) EvaluateForUser(ctx context.Context, userID string) ([]*markets.PriceAlert, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*markets.PriceAlert), args.Error(1)
}

// MockWeatherService is a mock implementation of WeatherService
type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) Current(ctx context.Context, locationName string) (*weather.Observation, error) {
	args := m.Called(ctx, locationName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weather.Observation), args.Error(1)
}

func (m *MockWeatherService) History(ctx context.Context, query *weather.HistoryQuery) ([]*weather.Observation, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*weather.Observation), args.Error(1)
}

func (m *MockWeatherService) Record(ctx context.Context, observation *weather.Observation) error {
	args := m.Called(ctx, observation)
	return args.Error(0)
}

func (m *MockWeatherService) Advise(ctx context.Context, locationName, language string) (*weather.Advisory, error) {
	args := m.Called(ctx, locationName, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weather.Advisory), args.Error(1)
}

// MockSchemeService is a mock implementation of SchemeService
type MockSchemeService struct {
	mock.Mock
}

func (m *MockSchemeService) List(ctx context.Context, query *schemes.SchemeQuery) ([]*schemes.Scheme, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schemes.Scheme), args.Error(1)
}

func (m *MockSchemeService) GetByCode(ctx context.Context, schemeCode string) (*schemes.Scheme, error) {
	args := m.Called(ctx, schemeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemes.Scheme), args.Error(1)
}

func (m *MockSchemeService) Upsert(ctx context.Context, scheme *schemes.Scheme) (*schemes.Scheme, error) {
	args := m.Called(ctx, scheme)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemes.Scheme), args.Error(1)
}

// MockApplicationService is a mock implementation of ApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, userID, schemeCode string, notes *string) (*schemes.Application, error) {
	args := m.Called(ctx, userID, schemeCode, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemes.Application), args.Error(1)
}

func (m *MockApplicationService) ListByUser(ctx context.Context, userID string) ([]*schemes.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schemes.Application), args.Error(1)
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, applicationID, status string) (*schemes.Application, error) {
	args := m.Called(ctx, applicationID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemes.Application), args.Error(1)
}

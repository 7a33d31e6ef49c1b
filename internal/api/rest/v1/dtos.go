package v1

import (
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/chat"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/schemes"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"
)

// ErrorResponse carries an error message back to the client
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries an informational message back to the client
type InfoResponse struct {
	Message string `json:"message"`
}

// ChatRequest is the payload for sending a message to the assistant
type ChatRequest struct {
	Message   string  `json:"message" binding:"required,min=1,max=1000"`
	SessionID string  `json:"session_id"`
	UserID    *string `json:"user_id" binding:"omitempty,uuid4"`
	Language  string  `json:"language" binding:"omitempty,oneof=en hi"`
}

// ChatResponse is the assistant reply for a processed message
type ChatResponse struct {
	ConversationID string    `json:"conversation_id"`
	Response       string    `json:"response"`
	Language       string    `json:"language"`
	SessionID      string    `json:"session_id"`
	ContextTags    []string  `json:"context_tags"`
	Timestamp      time.Time `json:"timestamp"`
	ResponseTimeMs int64     `json:"response_time_ms"`
}

// NewChatResponse maps a conversation to its API representation
func NewChatResponse(conversation *chat.Conversation) ChatResponse {
	return ChatResponse{
		ConversationID: conversation.ID,
		Response:       conversation.Response,
		Language:       conversation.Language,
		SessionID:      conversation.SessionID,
		ContextTags:    conversation.ContextTags,
		Timestamp:      conversation.Timestamp,
		ResponseTimeMs: conversation.ResponseTimeMs,
	}
}

// ConversationResponse is one transcript row in a history listing
type ConversationResponse struct {
	ID             string    `json:"id"`
	Message        string    `json:"message"`
	Response       string    `json:"response"`
	Language       string    `json:"language"`
	ContextTags    []string  `json:"context_tags"`
	Timestamp      time.Time `json:"timestamp"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	UserFeedback   *int      `json:"user_feedback,omitempty"`
}

// NewConversationResponse maps a conversation to a history row
func NewConversationResponse(conversation *chat.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:             conversation.ID,
		Message:        conversation.Message,
		Response:       conversation.Response,
		Language:       conversation.Language,
		ContextTags:    conversation.ContextTags,
		Timestamp:      conversation.Timestamp,
		ResponseTimeMs: conversation.ResponseTimeMs,
		UserFeedback:   conversation.UserFeedback,
	}
}

// SessionResponse summarizes one chat session
type SessionResponse struct {
	SessionID       string    `json:"session_id"`
	LastMessageTime time.Time `json:"last_message_time"`
}

// FeedbackRequest is the payload for rating a conversation
type FeedbackRequest struct {
	ConversationID string `json:"conversation_id" binding:"required,uuid4"`
	Rating         int    `json:"rating" binding:"required,min=1,max=5"`
}

// QuickQuestionResponse is one curated suggestion
type QuickQuestionResponse struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// RegisterUserRequest is the payload for creating a farmer account
type RegisterUserRequest struct {
	PhoneNumber       string `json:"phone_number" binding:"required"`
	Name              string `json:"name"`
	PreferredLanguage string `json:"preferred_language" binding:"omitempty,oneof=en hi"`
}

// UpdateUserRequest carries the mutable profile fields; absent fields are left
// unchanged
type UpdateUserRequest struct {
	Name              *string  `json:"name"`
	Email             *string  `json:"email" binding:"omitempty,email"`
	PreferredLanguage *string  `json:"preferred_language" binding:"omitempty,oneof=en hi"`
	LocationState     *string  `json:"location_state"`
	LocationDistrict  *string  `json:"location_district"`
	LandSizeHectares  *string  `json:"land_size_hectares"`
	PrimaryCrops      []string `json:"primary_crops"`
}

// UserResponse is the API representation of a farmer account
type UserResponse struct {
	ID                string     `json:"id"`
	PhoneNumber       string     `json:"phone_number"`
	Email             *string    `json:"email,omitempty"`
	Name              *string    `json:"name,omitempty"`
	PreferredLanguage string     `json:"preferred_language"`
	LocationState     string     `json:"location_state"`
	LocationDistrict  *string    `json:"location_district,omitempty"`
	LandSizeHectares  *string    `json:"land_size_hectares,omitempty"`
	PrimaryCrops      []string   `json:"primary_crops,omitempty"`
	IsFarmer          bool       `json:"is_farmer"`
	CreatedAt         time.Time  `json:"created_at"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
}

// NewUserResponse maps a user to its API representation
func NewUserResponse(user *users.User) UserResponse {
	response := UserResponse{
		ID:                user.ID,
		PhoneNumber:       user.PhoneNumber,
		Email:             user.Email,
		Name:              user.Name,
		PreferredLanguage: user.PreferredLanguage,
		LocationState:     user.LocationState,
		LocationDistrict:  user.LocationDistrict,
		PrimaryCrops:      user.PrimaryCrops,
		IsFarmer:          user.IsFarmer,
		CreatedAt:         user.CreatedAt,
		LastLogin:         user.LastLogin,
	}
	if user.LandSizeHectares != nil {
		landSize := user.LandSizeHectares.String()
		response.LandSizeHectares = &landSize
	}
	return response
}

// IngestPriceRequest is the payload for storing a mandi quote
type IngestPriceRequest struct {
	CommodityName   string  `json:"commodity_name" binding:"required"`
	CommodityNameHi *string `json:"commodity_name_hi"`
	Variety         *string `json:"variety"`
	Grade           *string `json:"grade"`
	MarketName      string  `json:"market_name" binding:"required"`
	MarketNameHi    *string `json:"market_name_hi"`
	State           string  `json:"state"`
	MinPrice        string  `json:"min_price" binding:"required"`
	MaxPrice        string  `json:"max_price" binding:"required"`
	ModalPrice      string  `json:"modal_price" binding:"required"`
	PriceUnit       string  `json:"price_unit"`
	ArrivalDate     string  `json:"arrival_date" binding:"required"`
	Source          string  `json:"source" binding:"omitempty,oneof=agmarknet enam manual"`
}

// PriceResponse is the API representation of a mandi quote
type PriceResponse struct {
	ID              string    `json:"id"`
	CommodityName   string    `json:"commodity_name"`
	CommodityNameHi *string   `json:"commodity_name_hi,omitempty"`
	Variety         *string   `json:"variety,omitempty"`
	Grade           *string   `json:"grade,omitempty"`
	MarketName      string    `json:"market_name"`
	MarketNameHi    *string   `json:"market_name_hi,omitempty"`
	State           string    `json:"state"`
	MinPrice        string    `json:"min_price"`
	MaxPrice        string    `json:"max_price"`
	ModalPrice      string    `json:"modal_price"`
	PriceUnit       string    `json:"price_unit"`
	ArrivalDate     string    `json:"arrival_date"`
	Source          string    `json:"source"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewPriceResponse maps a quote to its API representation
func NewPriceResponse(price *markets.CropPrice) PriceResponse {
	return PriceResponse{
		ID:              price.ID,
		CommodityName:   price.CommodityName,
		CommodityNameHi: price.CommodityNameHi,
		Variety:         price.Variety,
		Grade:           price.Grade,
		MarketName:      price.MarketName,
		MarketNameHi:    price.MarketNameHi,
		State:           price.State,
		MinPrice:        price.MinPrice.String(),
		MaxPrice:        price.MaxPrice.String(),
		ModalPrice:      price.ModalPrice.String(),
		PriceUnit:       price.PriceUnit,
		ArrivalDate:     price.ArrivalDate.Format("2006-01-02"),
		Source:          price.Source,
		CreatedAt:       price.CreatedAt,
	}
}

// RefreshPricesRequest names the commodities to pull from the market feed
type RefreshPricesRequest struct {
	Commodities []string `json:"commodities" binding:"required,min=1"`
}

// CreateAlertRequest is the payload for subscribing to a price alert
type CreateAlertRequest struct {
	UserID           string  `json:"user_id" binding:"required,uuid4"`
	CommodityName    string  `json:"commodity_name" binding:"required"`
	MarketName       string  `json:"market_name" binding:"required"`
	AlertType        string  `json:"alert_type" binding:"required,oneof=above below change_percent"`
	ThresholdValue   string  `json:"threshold_value" binding:"required"`
	ChangePercentage *string `json:"change_percentage"`
}

// AlertResponse is the API representation of a price alert
type AlertResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	CommodityName    string    `json:"commodity_name"`
	MarketName       string    `json:"market_name"`
	AlertType        string    `json:"alert_type"`
	ThresholdValue   string    `json:"threshold_value"`
	ChangePercentage *string   `json:"change_percentage,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewAlertResponse maps an alert to its API representation
func NewAlertResponse(alert *markets.PriceAlert) AlertResponse {
	response := AlertResponse{
		ID:             alert.ID,
		UserID:         alert.UserID,
		CommodityName:  alert.CommodityName,
		MarketName:     alert.MarketName,
		AlertType:      alert.AlertType,
		ThresholdValue: alert.ThresholdValue.String(),
		IsActive:       alert.IsActive,
		CreatedAt:      alert.CreatedAt,
	}
	if alert.ChangePercentage != nil {
		pct := alert.ChangePercentage.String()
		response.ChangePercentage = &pct
	}
	return response
}

// RecordWeatherRequest is the payload for a manual observation ingest
type RecordWeatherRequest struct {
	LocationName       string   `json:"location_name" binding:"required"`
	Latitude           float64  `json:"latitude" binding:"min=-90,max=90"`
	Longitude          float64  `json:"longitude" binding:"min=-180,max=180"`
	TemperatureCelsius float64  `json:"temperature_celsius"`
	FeelsLikeCelsius   *float64 `json:"feels_like_celsius"`
	HumidityPercent    int      `json:"humidity_percent" binding:"min=0,max=100"`
	RainfallMm         float64  `json:"rainfall_mm"`
	WindSpeedKph       *float64 `json:"wind_speed_kph"`
	UVIndex            *int     `json:"uv_index"`
	Condition          string   `json:"condition" binding:"required"`
	ConditionHi        *string  `json:"condition_hi"`
	Source             string   `json:"source"`
}

// WeatherResponse is the API representation of an observation with its
// derived properties
type WeatherResponse struct {
	ID                    string    `json:"id"`
	LocationName          string    `json:"location_name"`
	Latitude              float64   `json:"latitude"`
	Longitude             float64   `json:"longitude"`
	ObservationTime       time.Time `json:"observation_time"`
	TemperatureCelsius    float64   `json:"temperature_celsius"`
	TemperatureFahrenheit float64   `json:"temperature_fahrenheit"`
	FeelsLikeCelsius      *float64  `json:"feels_like_celsius,omitempty"`
	HumidityPercent       int       `json:"humidity_percent"`
	HumidityLevel         string    `json:"humidity_level"`
	RainfallMm            float64   `json:"rainfall_mm"`
	WindSpeedKph          *float64  `json:"wind_speed_kph,omitempty"`
	UVIndex               *int      `json:"uv_index,omitempty"`
	Condition             string    `json:"condition"`
	ConditionHi           *string   `json:"condition_hi,omitempty"`
	IsRainy               bool      `json:"is_rainy"`
	IsHot                 bool      `json:"is_hot"`
	IsCold                bool      `json:"is_cold"`
	Source                string    `json:"source"`
}

// NewWeatherResponse maps an observation to its API representation
func NewWeatherResponse(observation *weather.Observation) WeatherResponse {
	return WeatherResponse{
		ID:                    observation.ID,
		LocationName:          observation.LocationName,
		Latitude:              observation.Latitude,
		Longitude:             observation.Longitude,
		ObservationTime:       observation.ObservationTime,
		TemperatureCelsius:    observation.TemperatureCelsius,
		TemperatureFahrenheit: observation.TemperatureFahrenheit(),
		FeelsLikeCelsius:      observation.FeelsLikeCelsius,
		HumidityPercent:       observation.HumidityPercent,
		HumidityLevel:         observation.HumidityLevel(),
		RainfallMm:            observation.RainfallMm,
		WindSpeedKph:          observation.WindSpeedKph,
		UVIndex:               observation.UVIndex,
		Condition:             observation.Condition,
		ConditionHi:           observation.ConditionHi,
		IsRainy:               observation.IsRainy(),
		IsHot:                 observation.IsHot(),
		IsCold:                observation.IsCold(),
		Source:                observation.Source,
	}
}

// AdvisoryResponse carries farming recommendations for the current weather
type AdvisoryResponse struct {
	Observation WeatherResponse `json:"observation"`
	Messages    []string        `json:"messages"`
}

// UpsertSchemeRequest is the payload for creating or updating a scheme
type UpsertSchemeRequest struct {
	SchemeCode            string   `json:"scheme_code" binding:"required"`
	Name                  string   `json:"name" binding:"required"`
	NameHi                *string  `json:"name_hi"`
	Description           string   `json:"description" binding:"required"`
	DescriptionHi         *string  `json:"description_hi"`
	Category              string   `json:"category" binding:"required"`
	ImplementingAgency    *string  `json:"implementing_agency"`
	BenefitAmount         *string  `json:"benefit_amount"`
	BenefitFrequency      *string  `json:"benefit_frequency" binding:"omitempty,oneof=one_time annual monthly"`
	EligibilityCriteria   string   `json:"eligibility_criteria" binding:"required"`
	EligibilityCriteriaHi *string  `json:"eligibility_criteria_hi"`
	ApplicationProcess    string   `json:"application_process" binding:"required"`
	ApplicationProcessHi  *string  `json:"application_process_hi"`
	RequiredDocuments     []string `json:"required_documents" binding:"required,min=1"`
	ApplicationLink       *string  `json:"application_link" binding:"omitempty,url"`
	DeadlineDate          *string  `json:"deadline_date"`
	IsActive              *bool    `json:"is_active"`
	State                 string   `json:"state"`
}

// SchemeResponse is the language-aware API representation of a scheme
type SchemeResponse struct {
	ID                    string     `json:"id"`
	SchemeCode            string     `json:"scheme_code"`
	Name                  string     `json:"name"`
	Description           string     `json:"description"`
	Category              string     `json:"category"`
	ImplementingAgency    *string    `json:"implementing_agency,omitempty"`
	BenefitAmount         *string    `json:"benefit_amount,omitempty"`
	BenefitFrequency      *string    `json:"benefit_frequency,omitempty"`
	EligibilityCriteria   string     `json:"eligibility_criteria"`
	ApplicationProcess    string     `json:"application_process"`
	RequiredDocuments     []string   `json:"required_documents"`
	ApplicationLink       *string    `json:"application_link,omitempty"`
	DeadlineDate          *time.Time `json:"deadline_date,omitempty"`
	IsDeadlineApproaching bool       `json:"is_deadline_approaching"`
	IsActive              bool       `json:"is_active"`
	State                 string     `json:"state"`
}

// NewSchemeResponse maps a scheme to its API representation, localizing the
// text fields for the requested language
func NewSchemeResponse(scheme *schemes.Scheme, language string) SchemeResponse {
	response := SchemeResponse{
		ID:                    scheme.ID,
		SchemeCode:            scheme.SchemeCode,
		Name:                  scheme.LocalizedName(language),
		Description:           scheme.LocalizedDescription(language),
		Category:              scheme.Category,
		ImplementingAgency:    scheme.ImplementingAgency,
		BenefitFrequency:      scheme.BenefitFrequency,
		EligibilityCriteria:   scheme.LocalizedEligibility(language),
		ApplicationProcess:    scheme.LocalizedProcess(language),
		RequiredDocuments:     scheme.RequiredDocuments,
		ApplicationLink:       scheme.ApplicationLink,
		DeadlineDate:          scheme.DeadlineDate,
		IsDeadlineApproaching: scheme.IsDeadlineApproaching(time.Now()),
		IsActive:              scheme.IsActive,
		State:                 scheme.State,
	}
	if scheme.BenefitAmount != nil {
		amount := scheme.BenefitAmount.String()
		response.BenefitAmount = &amount
	}
	return response
}

// ApplyRequest is the payload for applying to a scheme
type ApplyRequest struct {
	UserID string  `json:"user_id" binding:"required,uuid4"`
	Notes  *string `json:"notes"`
}

// UpdateApplicationStatusRequest moves an application to a new status
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=applied pending approved rejected"`
}

// ApplicationResponse is the API representation of a scheme application
type ApplicationResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	SchemeID        string    `json:"scheme_id"`
	ApplicationDate time.Time `json:"application_date"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
}

// NewApplicationResponse maps an application to its API representation
func NewApplicationResponse(application *schemes.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              application.ID,
		UserID:          application.UserID,
		SchemeID:        application.SchemeID,
		ApplicationDate: application.ApplicationDate,
		Status:          application.Status,
		Notes:           application.Notes,
	}
}

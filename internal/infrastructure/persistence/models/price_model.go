package models

import (
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"
	"github.com/shopspring/decimal"
)

// CropPriceModel is the GORM database model for mandi price quotes (infrastructure concern)
type CropPriceModel struct {
	ID              string  `gorm:"primaryKey;type:uuid"`
	CommodityName   string  `gorm:"not null;index;type:varchar(255)"`
	CommodityNameHi *string `gorm:"type:varchar(255)"`
	Variety         *string `gorm:"type:varchar(255)"`
	Grade           *string `gorm:"type:varchar(50)"`
	MarketName      string  `gorm:"not null;index;type:varchar(255)"`
	MarketNameHi    *string `gorm:"type:varchar(255)"`
	State           string  `gorm:"not null;type:varchar(100)"`
	MinPrice        decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	MaxPrice        decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	ModalPrice      decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	PriceUnit       string          `gorm:"not null;type:varchar(50)"`
	ArrivalDate     time.Time       `gorm:"not null;index"`
	Source          string          `gorm:"type:varchar(100)"`
	CreatedAt       time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CropPriceModel) TableName() string {
	return "crop_prices"
}

// ToDomain converts GORM model to domain entity
func (m *CropPriceModel) ToDomain() *markets.CropPrice {
	return &markets.CropPrice{
		ID:              m.ID,
		CommodityName:   m.CommodityName,
		CommodityNameHi: m.CommodityNameHi,
		Variety:         m.Variety,
		Grade:           m.Grade,
		MarketName:      m.MarketName,
		MarketNameHi:    m.MarketNameHi,
		State:           m.State,
		MinPrice:        m.MinPrice,
		MaxPrice:        m.MaxPrice,
		ModalPrice:      m.ModalPrice,
		PriceUnit:       m.PriceUnit,
		ArrivalDate:     m.ArrivalDate,
		Source:          m.Source,
		CreatedAt:       m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CropPriceModel) FromDomain(p *markets.CropPrice) {
	m.ID = p.ID
	m.CommodityName = p.CommodityName
	m.CommodityNameHi = p.CommodityNameHi
	m.Variety = p.Variety
	m.Grade = p.Grade
	m.MarketName = p.MarketName
	m.MarketNameHi = p.MarketNameHi
	m.State = p.State
	m.MinPrice = p.MinPrice
	m.MaxPrice = p.MaxPrice
	m.ModalPrice = p.ModalPrice
	m.PriceUnit = p.PriceUnit
	m.ArrivalDate = p.ArrivalDate
	m.Source = p.Source
	m.CreatedAt = p.CreatedAt
}

// PriceAlertModel is the GORM database model for price alerts (infrastructure concern)
type PriceAlertModel struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	UserID           string `gorm:"not null;index;type:uuid"`
	CommodityName    string `gorm:"not null;index;type:varchar(255)"`
	MarketName       string `gorm:"not null;type:varchar(255)"`
	AlertType        string `gorm:"not null;type:varchar(20)"`
	ThresholdValue   decimal.Decimal  `gorm:"not null;type:decimal(10,2)"`
	ChangePercentage *decimal.Decimal `gorm:"type:decimal(5,2)"`
	IsActive         bool             `gorm:"not null"`
	CreatedAt        time.Time        `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PriceAlertModel) TableName() string {
	return "price_alerts"
}

// ToDomain converts GORM model to domain entity
func (m *PriceAlertModel) ToDomain() *markets.PriceAlert {
	return &markets.PriceAlert{
		ID:               m.ID,
		UserID:           m.UserID,
		CommodityName:    m.CommodityName,
		MarketName:       m.MarketName,
		AlertType:        m.AlertType,
		ThresholdValue:   m.ThresholdValue,
		ChangePercentage: m.ChangePercentage,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PriceAlertModel) FromDomain(a *markets.PriceAlert) {
	m.ID = a.ID
	m.UserID = a.UserID
	m.CommodityName = a.CommodityName
	m.MarketName = a.MarketName
	m.AlertType = a.AlertType
	m.ThresholdValue = a.ThresholdValue
	m.ChangePercentage = a.ChangePercentage
	m.IsActive = a.IsActive
	m.CreatedAt = a.CreatedAt
}

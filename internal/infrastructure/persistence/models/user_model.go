package models

import (
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
	"github.com/shopspring/decimal"
)

// UserModel is the GORM database model for farmer accounts (infrastructure concern)
type UserModel struct {
	ID                string  `gorm:"primaryKey;type:uuid"`
	PhoneNumber       string  `gorm:"not null;uniqueIndex;type:varchar(20)"`
	Email             *string `gorm:"uniqueIndex;type:varchar(255)"`
	Name              *string `gorm:"type:varchar(255)"`
	PreferredLanguage string  `gorm:"not null;type:varchar(2)"`
	LocationState     string  `gorm:"not null;type:varchar(100)"`
	LocationDistrict  *string `gorm:"type:varchar(100)"`
	LandSizeHectares  *decimal.Decimal `gorm:"type:decimal(10,2)"`
	PrimaryCrops      []string         `gorm:"serializer:json"`
	IsFarmer          bool             `gorm:"not null"`
	CreatedAt         time.Time        `gorm:"not null"`
	UpdatedAt         time.Time        `gorm:"not null"`
	LastLogin         *time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:                m.ID,
		PhoneNumber:       m.PhoneNumber,
		Email:             m.Email,
		Name:              m.Name,
		PreferredLanguage: m.PreferredLanguage,
		LocationState:     m.LocationState,
		LocationDistrict:  m.LocationDistrict,
		LandSizeHectares:  m.LandSizeHectares,
		PrimaryCrops:      m.PrimaryCrops,
		IsFarmer:          m.IsFarmer,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		LastLogin:         m.LastLogin,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.PhoneNumber = u.PhoneNumber
	m.Email = u.Email
	m.Name = u.Name
	m.PreferredLanguage = u.PreferredLanguage
	m.LocationState = u.LocationState
	m.LocationDistrict = u.LocationDistrict
	m.LandSizeHectares = u.LandSizeHectares
	m.PrimaryCrops = u.PrimaryCrops
	m.IsFarmer = u.IsFarmer
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
	m.LastLogin = u.LastLogin
}

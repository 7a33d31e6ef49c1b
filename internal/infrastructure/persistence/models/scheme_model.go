package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/schemes"
)

// SchemeModel is the GORM database model for government schemes (infrastructure concern)
type SchemeModel struct {
	ID                    string  `gorm:"primaryKey;type:uuid"`
	SchemeCode            string  `gorm:"not null;uniqueIndex;type:varchar(100)"`
	Name                  string  `gorm:"not null;type:varchar(500)"`
	NameHi                *string `gorm:"type:varchar(500)"`
	Description           string  `gorm:"not null;type:text"`
	DescriptionHi         *string `gorm:"type:text"`
	Category              string  `gorm:"not null;index;type:varchar(100)"`
	ImplementingAgency    *string `gorm:"type:varchar(255)"`
	BenefitAmount         *decimal.Decimal `gorm:"type:decimal(12,2)"`
	BenefitFrequency      *string          `gorm:"type:varchar(50)"`
	EligibilityCriteria   string           `gorm:"not null;type:text"`
	EligibilityCriteriaHi *string          `gorm:"type:text"`
	ApplicationProcess    string           `gorm:"not null;type:text"`
	ApplicationProcessHi  *string          `gorm:"type:text"`
	RequiredDocuments     []string         `gorm:"serializer:json;type:text"`
	ApplicationLink       *string          `gorm:"type:varchar(500)"`
	DeadlineDate          *time.Time
	IsActive              bool   `gorm:"not null;index"`
	State                 string `gorm:"not null;index;type:varchar(100)"`
	CreatedAt             time.Time `gorm:"not null"`
	UpdatedAt             time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SchemeModel) TableName() string {
	return "government_schemes"
}

// ToDomain converts GORM model to domain entity
func (m *SchemeModel) ToDomain() *schemes.Scheme {
	return &schemes.Scheme{
		ID:                    m.ID,
		SchemeCode:            m.SchemeCode,
		Name:                  m.Name,
		NameHi:                m.NameHi,
		Description:           m.Description,
		DescriptionHi:         m.DescriptionHi,
		Category:              m.Category,
		ImplementingAgency:    m.ImplementingAgency,
		BenefitAmount:         m.BenefitAmount,
		BenefitFrequency:      m.BenefitFrequency,
		EligibilityCriteria:   m.EligibilityCriteria,
		EligibilityCriteriaHi: m.EligibilityCriteriaHi,
		ApplicationProcess:    m.ApplicationProcess,
		ApplicationProcessHi:  m.ApplicationProcessHi,
		RequiredDocuments:     m.RequiredDocuments,
		ApplicationLink:       m.ApplicationLink,
		DeadlineDate:          m.DeadlineDate,
		IsActive:              m.IsActive,
		State:                 m.State,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SchemeModel) FromDomain(s *schemes.Scheme) {
	m.ID = s.ID
	m.SchemeCode = s.SchemeCode
	m.Name = s.Name
	m.NameHi = s.NameHi
	m.Description = s.Description
	m.DescriptionHi = s.DescriptionHi
	m.Category = s.Category
	m.ImplementingAgency = s.ImplementingAgency
	m.BenefitAmount = s.BenefitAmount
	m.BenefitFrequency = s.BenefitFrequency
	m.EligibilityCriteria = s.EligibilityCriteria
	m.EligibilityCriteriaHi = s.EligibilityCriteriaHi
	m.ApplicationProcess = s.ApplicationProcess
	m.ApplicationProcessHi = s.ApplicationProcessHi
	m.RequiredDocuments = s.RequiredDocuments
	m.ApplicationLink = s.ApplicationLink
	m.DeadlineDate = s.DeadlineDate
	m.IsActive = s.IsActive
	m.State = s.State
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// ApplicationModel is the GORM database model for scheme applications (infrastructure concern)
type ApplicationModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	UserID          string    `gorm:"not null;index;type:uuid"`
	SchemeID        string    `gorm:"not null;index;type:uuid"`
	ApplicationDate time.Time `gorm:"not null"`
	Status          string    `gorm:"not null;type:varchar(50)"`
	Notes           *string   `gorm:"type:text"`
	ReminderDate    *time.Time
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ApplicationModel) TableName() string {
	return "user_scheme_applications"
}

// ToDomain converts GORM model to domain entity
func (m *ApplicationModel) ToDomain() *schemes.Application {
	return &schemes.Application{
		ID:              m.ID,
		UserID:          m.UserID,
		SchemeID:        m.SchemeID,
		ApplicationDate: m.ApplicationDate,
		Status:          m.Status,
		Notes:           m.Notes,
		ReminderDate:    m.ReminderDate,
		CreatedAt:       m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ApplicationModel) FromDomain(a *schemes.Application) {
	m.ID = a.ID
	m.UserID = a.UserID
	m.SchemeID = a.SchemeID
	m.ApplicationDate = a.ApplicationDate
	m.Status = a.Status
	m.Notes = a.Notes
	m.ReminderDate = a.ReminderDate
	m.CreatedAt = a.CreatedAt
}

package schemes

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Scheme categories.
const (
	CategoryFinancialAssistance = "financial_assistance"
	CategoryInsurance           = "insurance"
	CategorySubsidy             = "subsidy"
	CategoryCredit              = "credit"
	CategoryTraining            = "training"
)

// Benefit frequencies.
const (
	BenefitOneTime = "one_time"
	BenefitAnnual  = "annual"
	BenefitMonthly = "monthly"
)

// deadlineWindow is how far out a deadline counts as approaching.
const deadlineWindow = 30 * 24 * time.Hour

// Scheme entity: a government welfare scheme for farmers.
type Scheme struct {
	ID                   string `validate:"required,uuid4"`
	SchemeCode           string `validate:"required,min=1,max=100"`
	Name                 string `validate:"required,min=1,max=500"`
	NameHi               *string
	Description          string `validate:"required"`
	DescriptionHi        *string
	Category             string `validate:"required,max=100"`
	ImplementingAgency   *string
	BenefitAmount        *decimal.Decimal
	BenefitFrequency     *string `validate:"omitempty,oneof=one_time annual monthly"`
	EligibilityCriteria  string  `validate:"required"`
	EligibilityCriteriaHi *string
	ApplicationProcess   string `validate:"required"`
	ApplicationProcessHi *string
	RequiredDocuments    []string `validate:"required,min=1"`
	ApplicationLink      *string  `validate:"omitempty,url"`
	DeadlineDate         *time.Time
	IsActive             bool
	State                string `validate:"required,max=100"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Validate for validating Scheme struct
func (s *Scheme) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// IsDeadlineApproaching reports whether the deadline falls within the next
// 30 days.
func (s *Scheme) IsDeadlineApproaching(now time.Time) bool {
	if s.DeadlineDate == nil {
		return false
	}
	until := s.DeadlineDate.Sub(now)
	return until >= 0 && until <= deadlineWindow
}

// IsDeadlinePassed reports whether the deadline has already passed.
func (s *Scheme) IsDeadlinePassed(now time.Time) bool {
	if s.DeadlineDate == nil {
		return false
	}
	return s.DeadlineDate.Before(now)
}

// LocalizedName returns the Hindi name when language is "hi" and one exists.
func (s *Scheme) LocalizedName(language string) string {
	if language == "hi" && s.NameHi != nil && *s.NameHi != "" {
		return *s.NameHi
	}
	return s.Name
}

// LocalizedDescription returns the Hindi description when available.
func (s *Scheme) LocalizedDescription(language string) string {
	if language == "hi" && s.DescriptionHi != nil && *s.DescriptionHi != "" {
		return *s.DescriptionHi
	}
	return s.Description
}

// LocalizedEligibility returns the Hindi eligibility criteria when available.
func (s *Scheme) LocalizedEligibility(language string) string {
	if language == "hi" && s.EligibilityCriteriaHi != nil && *s.EligibilityCriteriaHi != "" {
		return *s.EligibilityCriteriaHi
	}
	return s.EligibilityCriteria
}

// LocalizedProcess returns the Hindi application process when available.
func (s *Scheme) LocalizedProcess(language string) string {
	if language == "hi" && s.ApplicationProcessHi != nil && *s.ApplicationProcessHi != "" {
		return *s.ApplicationProcessHi
	}
	return s.ApplicationProcess
}

package markets

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Price sources.
const (
	SourceAgmarknet = "agmarknet"
	SourceEnam      = "enam"
	SourceManual    = "manual"
)

// DefaultPriceUnit is the unit Indian mandis quote prices in.
const DefaultPriceUnit = "Quintal"

// CropPrice entity: one mandi quote for a commodity on an arrival date.
// Prices are INR per PriceUnit.
type CropPrice struct {
	ID              string `validate:"required,uuid4"`
	CommodityName   string `validate:"required,min=1,max=255"`
	CommodityNameHi *string
	Variety         *string
	Grade           *string
	MarketName      string `validate:"required,min=1,max=255"`
	MarketNameHi    *string
	State           string          `validate:"required,max=100"`
	MinPrice        decimal.Decimal `validate:"required"`
	MaxPrice        decimal.Decimal `validate:"required"`
	ModalPrice      decimal.Decimal `validate:"required,modalPriceValidation"`
	PriceUnit       string          `validate:"required,max=50"`
	ArrivalDate     time.Time       `validate:"required"`
	Source          string          `validate:"omitempty,oneof=agmarknet enam manual"`
	CreatedAt       time.Time
}

// Validate for validating CropPrice struct
func (p *CropPrice) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("modalPriceValidation", validators.ModalPriceValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(p)
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

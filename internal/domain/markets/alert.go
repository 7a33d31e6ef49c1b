package markets

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Alert types.
const (
	AlertAbove         = "above"
	AlertBelow         = "below"
	AlertChangePercent = "change_percent"
)

// PriceAlert entity: a user subscription on a commodity/market pair.
type PriceAlert struct {
	ID               string `validate:"required,uuid4"`
	UserID           string `validate:"required,uuid4"`
	CommodityName    string `validate:"required,min=1,max=255"`
	MarketName       string `validate:"required,min=1,max=255"`
	AlertType        string `validate:"required,oneof=above below change_percent"`
	ThresholdValue   decimal.Decimal
	ChangePercentage *decimal.Decimal
	IsActive         bool
	CreatedAt        time.Time
}

// Validate for validating PriceAlert struct
func (a *PriceAlert) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
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

	if a.AlertType == AlertChangePercent && a.ChangePercentage == nil {
		return fmt.Errorf("change_percentage is required for change_percent alerts")
	}

	return nil
}

// Evaluate reports whether the alert fires for the current quote. previous is
// the previously observed quote for the same commodity/market pair; it may be
// nil, in which case change_percent alerts never fire.
func (a *PriceAlert) Evaluate(current *CropPrice, previous *CropPrice) bool {
	if !a.IsActive || current == nil {
		return false
	}

	switch a.AlertType {
	case AlertAbove:
		return current.ModalPrice.GreaterThan(a.ThresholdValue)
	case AlertBelow:
		return current.ModalPrice.LessThan(a.ThresholdValue)
	case AlertChangePercent:
		if previous == nil || a.ChangePercentage == nil || previous.ModalPrice.IsZero() {
			return false
		}
		change := current.ModalPrice.Sub(previous.ModalPrice).
			Div(previous.ModalPrice).
			Mul(decimal.NewFromInt(100)).
			Abs()
		return change.GreaterThanOrEqual(*a.ChangePercentage)
	default:
		return false
	}
}

package markets

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// PriceQuery filters and pages price listings.
type PriceQuery struct {
	CommodityName string
	MarketName    string
	State         string
	ArrivalFrom   time.Time
	Limit         int    `validate:"min=0,max=100"`
	Offset        int    `validate:"min=0"`
	SortBy        string `validate:"omitempty,oneof=arrival_date modal_price created_at"`
	SortOrder     string `validate:"omitempty,oneof=asc desc"`
}

// NewPriceQuery creates a query with default pagination and sorting.
func NewPriceQuery() *PriceQuery {
	return &PriceQuery{
		Limit:     20,
		SortBy:    "arrival_date",
		SortOrder: "desc",
	}
}

// Validate for validating PriceQuery struct
func (q *PriceQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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

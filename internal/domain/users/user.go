package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// User entity representing a farmer account.
type User struct {
	ID                string `validate:"required,uuid4"`
	PhoneNumber       string `validate:"required,phoneValidation"`
	Email             *string
	Name              *string `validate:"omitempty,max=255"`
	PreferredLanguage string  `validate:"required,oneof=en hi"`
	LocationState     string  `validate:"required,max=100"`
	LocationDistrict  *string `validate:"omitempty,max=100"`
	LandSizeHectares  *decimal.Decimal
	PrimaryCrops      []string
	IsFarmer          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LastLogin         *time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("phoneValidation", validators.PhoneValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(u)
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

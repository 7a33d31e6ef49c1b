package schemes

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Application statuses.
const (
	StatusApplied  = "applied"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatuses lists every status an application may carry.
var ValidStatuses = []string{StatusApplied, StatusPending, StatusApproved, StatusRejected}

// Application entity: a user's application to a scheme.
type Application struct {
	ID              string    `validate:"required,uuid4"`
	UserID          string    `validate:"required,uuid4"`
	SchemeID        string    `validate:"required,uuid4"`
	ApplicationDate time.Time `validate:"required"`
	Status          string    `validate:"required,oneof=applied pending approved rejected"`
	Notes           *string
	ReminderDate    *time.Time
	CreatedAt       time.Time
}

// Validate for validating Application struct
func (a *Application) Validate() error {
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

	return nil
}

// IsValidStatus reports whether status is one of the allowed values.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

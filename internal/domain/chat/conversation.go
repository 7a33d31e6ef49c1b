package chat

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Conversation entity: one farmer message and the assistant reply.
type Conversation struct {
	ID             string    `validate:"required,uuid4"`
	UserID         *string   `validate:"omitempty,uuid4"`
	SessionID      string    `validate:"required,min=1,max=255"`
	Language       string    `validate:"required,oneof=en hi"`
	Message        string    `validate:"required,min=1,max=1000"`
	Response       string    `validate:"required"`
	ContextTags    []string  `validate:"max=5"`
	Timestamp      time.Time `validate:"required"`
	ResponseTimeMs int64
	UserFeedback   *int `validate:"omitempty,min=1,max=5"`
}

// Validate for validating Conversation struct
func (c *Conversation) Validate() error {
	validate := validator.New()

	err := validate.Struct(c)
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

// SessionInfo summarizes a chat session for session listings.
type SessionInfo struct {
	SessionID       string
	LastMessageTime time.Time
}

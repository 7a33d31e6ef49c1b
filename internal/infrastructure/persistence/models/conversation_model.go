package models

import (
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/chat"
)

// ConversationModel is the GORM database model for chat transcripts (infrastructure concern)
type ConversationModel struct {
	ID             string   `gorm:"primaryKey;type:uuid"`
	UserID         *string  `gorm:"index;type:uuid"`
	SessionID      string   `gorm:"not null;index;type:varchar(255)"`
	Language       string   `gorm:"not null;type:varchar(2)"`
	Message        string   `gorm:"not null;type:text"`
	Response       string   `gorm:"not null;type:text"`
	ContextTags    []string `gorm:"serializer:json"`
	Timestamp      time.Time `gorm:"not null;index"`
	ResponseTimeMs int64
	UserFeedback   *int
}

// TableName specifies the table name for GORM
func (ConversationModel) TableName() string {
	return "chat_conversations"
}

// ToDomain converts GORM model to domain entity
func (m *ConversationModel) ToDomain() *chat.Conversation {
	return &chat.Conversation{
		ID:             m.ID,
		UserID:         m.UserID,
		SessionID:      m.SessionID,
		Language:       m.Language,
		Message:        m.Message,
		Response:       m.Response,
		ContextTags:    m.ContextTags,
		Timestamp:      m.Timestamp,
		ResponseTimeMs: m.ResponseTimeMs,
		UserFeedback:   m.UserFeedback,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ConversationModel) FromDomain(c *chat.Conversation) {
	m.ID = c.ID
	m.UserID = c.UserID
	m.SessionID = c.SessionID
	m.Language = c.Language
	m.Message = c.Message
	m.Response = c.Response
	m.ContextTags = c.ContextTags
	m.Timestamp = c.Timestamp
	m.ResponseTimeMs = c.ResponseTimeMs
	m.UserFeedback = c.UserFeedback
}

package chat

import (
	"context"
)

// HistoryLimit is how many conversations a history request returns at most.
const HistoryLimit = 50

// SessionListLimit is how many recent sessions a session listing returns.
const SessionListLimit = 10

// SendResult is what the chat service returns for a processed message.
type SendResult struct {
	Conversation *Conversation
}

// ChatService orchestrates assistant generation and transcript persistence.
type ChatService interface {
	// SendMessage generates a reply for message, persists the conversation and
	// returns it. An empty sessionID starts a new session; an empty language
	// triggers detection. userID may be nil for anonymous usage.
	SendMessage(ctx context.Context, userID *string, sessionID, message, language string) (*SendResult, error)

	// History returns up to HistoryLimit conversations of a session in
	// chronological order.
	History(ctx context.Context, sessionID string) ([]*Conversation, error)

	// ClearHistory removes all conversations of a session.
	ClearHistory(ctx context.Context, sessionID string) error

	// Sessions lists the most recent sessions, optionally scoped to a user.
	Sessions(ctx context.Context, userID *string) ([]*SessionInfo, error)

	// SubmitFeedback records a 1-5 rating on a conversation.
	SubmitFeedback(ctx context.Context, conversationID string, rating int) error
}

// ConversationRepository defines the interface for conversation persistence.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *Conversation) error
	GetByID(ctx context.Context, conversationID string) (*Conversation, error)
	// ListBySession returns the newest limit conversations of a session,
	// newest first.
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*Conversation, error)
	DeleteBySession(ctx context.Context, sessionID string) error
	ListSessions(ctx context.Context, userID *string, limit int) ([]*SessionInfo, error)
	UpdateFeedback(ctx context.Context, conversationID string, rating int) error
}

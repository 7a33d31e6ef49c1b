package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/assistant"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/chat"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"
)

// chatService implements the ChatService interface for assistant conversations
type chatService struct {
	generator        assistant.Generator
	catalog          *assistant.Catalog
	conversationRepo chat.ConversationRepository
	logger           logger.Logger
}

// NewChatService creates a new instance of ChatService. generator may be nil,
// in which case all replies come from the response catalog.
func NewChatService(
	generator assistant.Generator,
	catalog *assistant.Catalog,
	conversationRepo chat.ConversationRepository,
	logger logger.Logger,
) (chat.ChatService, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog must not be nil")
	}
	return &chatService{
		generator:        generator,
		catalog:          catalog,
		conversationRepo: conversationRepo,
		logger:           logger,
	}, nil
}

// SendMessage generates a reply, persists the exchange and returns it.
func (s *chatService) SendMessage(ctx context.Context, userID *string, sessionID, message, language string) (*chat.SendResult, error) {
	if message == "" {
		return nil, fmt.Errorf("message must not be empty")
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if language == "" {
		language = assistant.DetectLanguage(message)
	}
	if !assistant.IsSupportedLanguage(language) {
		return nil, fmt.Errorf("unsupported language: %s", language)
	}

	contextLines, err := s.recentContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	reply := s.generate(ctx, message, language, contextLines)

	conversation := &chat.Conversation{
		ID:             uuid.NewString(),
		UserID:         userID,
		SessionID:      sessionID,
		Language:       language,
		Message:        message,
		Response:       reply.Response,
		ContextTags:    reply.ContextTags,
		Timestamp:      time.Now(),
		ResponseTimeMs: reply.ResponseTimeMs,
	}

	if err := s.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, fmt.Errorf("failed to persist conversation: %w", err)
	}

	return &chat.SendResult{Conversation: conversation}, nil
}

// generate asks the inference backend and falls back to the response catalog
// when no backend is configured or the call fails.
func (s *chatService) generate(ctx context.Context, message, language string, contextLines []string) *assistant.Reply {
	if s.generator != nil {
		reply, err := s.generator.Generate(ctx, message, language, contextLines)
		if err == nil {
			// Models occasionally return nothing but whitespace, so
			// substitute the apology message instead of storing an
			// empty response.
			if strings.TrimSpace(reply.Response) == "" {
				reply.Response = assistant.FallbackResponse(language)
			}
			return reply
		}
		s.logger.Warn("Inference backend failed, falling back to catalog: ", err)
	}

	start := time.Now()
	response := s.catalog.Respond(message, language)
	return &assistant.Reply{
		Response:       response,
		Language:       language,
		ContextTags:    assistant.ExtractContextTags(message),
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}
}

// recentContext returns the prior messages of a session, oldest first.
func (s *chatService) recentContext(ctx context.Context, sessionID string) ([]string, error) {
	previous, err := s.conversationRepo.ListBySession(ctx, sessionID, chat.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load session context: %w", err)
	}

	lines := make([]string, 0, len(previous))
	for i := len(previous) - 1; i >= 0; i-- {
		lines = append(lines, previous[i].Message)
	}
	return lines, nil
}

// History returns a session transcript in chronological order.
func (s *chatService) History(ctx context.Context, sessionID string) ([]*chat.Conversation, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID must not be empty")
	}

	conversations, err := s.conversationRepo.ListBySession(ctx, sessionID, chat.HistoryLimit)
	if err != nil {
		return nil, err
	}

	// Repository returns newest first
	for i, j := 0, len(conversations)-1; i < j; i, j = i+1, j-1 {
		conversations[i], conversations[j] = conversations[j], conversations[i]
	}
	return conversations, nil
}

// ClearHistory removes all conversations of a session.
func (s *chatService) ClearHistory(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID must not be empty")
	}
	return s.conversationRepo.DeleteBySession(ctx, sessionID)
}

// Sessions lists the most recent sessions, optionally scoped to a user.
func (s *chatService) Sessions(ctx context.Context, userID *string) ([]*chat.SessionInfo, error) {
	return s.conversationRepo.ListSessions(ctx, userID, chat.SessionListLimit)
}

// SubmitFeedback records a 1-5 rating on a conversation.
func (s *chatService) SubmitFeedback(ctx context.Context, conversationID string, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return s.conversationRepo.UpdateFeedback(ctx, conversationID, rating)
}

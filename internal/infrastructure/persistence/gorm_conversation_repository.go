package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/chat"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence/models"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormConversationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormConversationRepository creates a new GORM-based ConversationRepository implementation
func NewGormConversationRepository(db *gorm.DB, logger logger.Logger) (chat.ConversationRepository, error) {
	return &gormConversationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormConversationRepository) Create(ctx context.Context, conversation *chat.Conversation) error {
	// Validate domain entity (business rules)
	if err := conversation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.ConversationModel{}
	model.FromDomain(conversation)

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}

	r.logger.Info("Created conversation with id ", conversation.ID)
	return nil
}

func (r *gormConversationRepository) GetByID(ctx context.Context, conversationID string) (*chat.Conversation, error) {
	var model models.ConversationModel
	if err := r.db.WithContext(ctx).Where("id = ?", conversationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("conversation with ID %s not found", conversationID)
		}
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormConversationRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*chat.Conversation, error) {
	var modelList []*models.ConversationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ConversationModel{}).
		Where("session_id = ?", sessionID).
		Order("timestamp DESC")

	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch conversations: %w", err)
	}

	// Convert to domain models
	domainList := make([]*chat.Conversation, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormConversationRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.ConversationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete conversations: %w", err)
	}

	r.logger.Info("Deleted conversations of session ", sessionID)
	return nil
}

func (r *gormConversationRepository) ListSessions(ctx context.Context, userID *string, limit int) ([]*chat.SessionInfo, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.ConversationModel{}).
		Order("timestamp DESC")
	if userID != nil {
		dbQuery = dbQuery.Where("user_id = ?", *userID)
	}

	var modelList []*models.ConversationModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	// Aggregating MAX(timestamp) in SQL scans back as a string on sqlite,
	// so the newest row per session is selected in Go instead. Rows arrive
	// newest first, which keeps the session ordering intact.
	seen := make(map[string]bool, len(modelList))
	var sessions []*chat.SessionInfo
	for _, model := range modelList {
		if seen[model.SessionID] {
			continue
		}
		seen[model.SessionID] = true
		sessions = append(sessions, &chat.SessionInfo{
			SessionID:       model.SessionID,
			LastMessageTime: model.Timestamp,
		})
		if limit > 0 && len(sessions) >= limit {
			break
		}
	}

	return sessions, nil
}

func (r *gormConversationRepository) UpdateFeedback(ctx context.Context, conversationID string, rating int) error {
	result := r.db.WithContext(ctx).Model(&models.ConversationModel{}).
		Where("id = ?", conversationID).
		Update("user_feedback", rating)
	if result.Error != nil {
		return fmt.Errorf("failed to update feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("conversation with ID %s not found", conversationID)
	}

	r.logger.Info("Recorded feedback for conversation with id ", conversationID)
	return nil
}

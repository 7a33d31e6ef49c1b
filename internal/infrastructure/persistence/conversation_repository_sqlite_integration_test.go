//go:build integration
// +build integration

package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/chat"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence/models"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	conversation := CreateTestConversation(t, nil, "")

	err := ctx.ConversationRepo.Create(context.Background(), conversation)
	require.NoError(t, err)

	// Verify using GORM model (infrastructure concern)
	var createdModel models.ConversationModel
	err = ctx.DB.First(&createdModel, "id = ?", conversation.ID).Error
	require.NoError(t, err)
	assert.Equal(t, conversation.ID, createdModel.ID)
	assert.Equal(t, conversation.SessionID, createdModel.SessionID)
	assert.Equal(t, []string{"seeds", "harvesting"}, createdModel.ContextTags)
}

func TestConversationSqliteRepository_Create_Invalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	conversation := &chat.Conversation{} // Invalid - missing required fields

	err := ctx.ConversationRepo.Create(context.Background(), conversation)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestConversationSqliteRepository_ListBySession(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	sessionID := uuid.NewString()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		conversation := CreateTestConversation(t, nil, sessionID)
		conversation.Message = fmt.Sprintf("message %d", i)
		conversation.Timestamp = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, ctx.ConversationRepo.Create(context.Background(), conversation))
	}

	list, err := ctx.ConversationRepo.ListBySession(context.Background(), sessionID, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Newest first
	assert.Equal(t, "message 2", list[0].Message)
	assert.Equal(t, "message 1", list[1].Message)
}

func TestConversationSqliteRepository_DeleteBySession(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	sessionID := uuid.NewString()
	conversation := CreateTestConversation(t, nil, sessionID)
	require.NoError(t, ctx.ConversationRepo.Create(context.Background(), conversation))

	require.NoError(t, ctx.ConversationRepo.DeleteBySession(context.Background(), sessionID))

	list, err := ctx.ConversationRepo.ListBySession(context.Background(), sessionID, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestConversationSqliteRepository_ListSessions(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	userID := uuid.NewString()
	base := time.Now().Add(-time.Hour)

	older := CreateTestConversation(t, &userID, uuid.NewString())
	older.Timestamp = base
	require.NoError(t, ctx.ConversationRepo.Create(context.Background(), older))

	newer := CreateTestConversation(t, &userID, uuid.NewString())
	newer.Timestamp = base.Add(30 * time.Minute)
	require.NoError(t, ctx.ConversationRepo.Create(context.Background(), newer))

	// A follow-up in the older session moves it to the top of the listing
	followUp := CreateTestConversation(t, &userID, older.SessionID)
	followUp.Timestamp = base.Add(45 * time.Minute)
	require.NoError(t, ctx.ConversationRepo.Create(context.Background(), followUp))

	// Another user's session must not appear
	otherUser := uuid.NewString()
	other := CreateTestConversation(t, &otherUser, uuid.NewString())
	require.NoError(t, ctx.ConversationRepo.Create(context.Background(), other))

	sessions, err := ctx.ConversationRepo.ListSessions(context.Background(), &userID, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, older.SessionID, sessions[0].SessionID)
	assert.Equal(t, newer.SessionID, sessions[1].SessionID)
	assert.WithinDuration(t, followUp.Timestamp, sessions[0].LastMessageTime, time.Second)
}

func TestConversationSqliteRepository_UpdateFeedback(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	conversation := CreateTestConversation(t, nil, "")
	require.NoError(t, ctx.ConversationRepo.Create(context.Background(), conversation))

	require.NoError(t, ctx.ConversationRepo.UpdateFeedback(context.Background(), conversation.ID, 5))

	fetched, err := ctx.ConversationRepo.GetByID(context.Background(), conversation.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.UserFeedback)
	assert.Equal(t, 5, *fetched.UserFeedback)
}

func TestConversationSqliteRepository_UpdateFeedback_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.ConversationRepo.UpdateFeedback(context.Background(), "non-existent-id", 3)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence/models"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationPsqlRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	conversation := CreateTestConversation(t, nil, "")

	err := ctx.ConversationRepo.Create(context.Background(), conversation)
	require.NoError(t, err)

	// Verify using GORM model (infrastructure concern)
	var createdModel models.ConversationModel
	err = ctx.DB.First(&createdModel, "id = ?", conversation.ID).Error
	require.NoError(t, err)
	assert.Equal(t, conversation.ID, createdModel.ID)
	assert.Equal(t, []string{"seeds", "harvesting"}, createdModel.ContextTags)
}

func TestConversationPsqlRepository_UpdateFeedback(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	conversation := CreateTestConversation(t, nil, "")
	require.NoError(t, ctx.ConversationRepo.Create(context.Background(), conversation))

	require.NoError(t, ctx.ConversationRepo.UpdateFeedback(context.Background(), conversation.ID, 4))

	fetched, err := ctx.ConversationRepo.GetByID(context.Background(), conversation.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.UserFeedback)
	assert.Equal(t, 4, *fetched.UserFeedback)
}

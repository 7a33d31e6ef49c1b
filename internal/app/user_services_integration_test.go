//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	user, err := services.UserService.Register(context.Background(), "+919876543210", "Sita Devi", "hi")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, config.LanguageHindi, user.PreferredLanguage)
	assert.True(t, user.IsFarmer)
	require.NotNil(t, user.Name)
	assert.Equal(t, "Sita Devi", *user.Name)
}

func TestUserService_Register_PhoneTaken(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.UserService.Register(ctx, "+919876543210", "", "")
	require.NoError(t, err)

	_, err = services.UserService.Register(ctx, "+919876543210", "", "")
	assert.ErrorIs(t, err, users.ErrPhoneTaken)
}

func TestUserService_Register_InvalidPhone(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.UserService.Register(context.Background(), "12345", "", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestUserService_UpdateProfile(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, err := services.UserService.Register(ctx, "+919876543210", "", "")
	require.NoError(t, err)

	district := "Ranchi"
	landSize := "2.5"
	language := config.LanguageHindi
	updated, err := services.UserService.UpdateProfile(ctx, user.ID, users.ProfileUpdate{
		PreferredLanguage: &language,
		LocationDistrict:  &district,
		LandSizeHectares:  &landSize,
		PrimaryCrops:      []string{"rice", "maize"},
	})
	require.NoError(t, err)

	assert.Equal(t, config.LanguageHindi, updated.PreferredLanguage)
	require.NotNil(t, updated.LandSizeHectares)
	assert.Equal(t, "2.5", updated.LandSizeHectares.String())
	assert.Equal(t, []string{"rice", "maize"}, updated.PrimaryCrops)
}

func TestUserService_UpdateProfile_InvalidLandSize(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, err := services.UserService.Register(ctx, "+919876543210", "", "")
	require.NoError(t, err)

	landSize := "lots"
	_, err = services.UserService.UpdateProfile(ctx, user.ID, users.ProfileUpdate{LandSizeHectares: &landSize})
	assert.Error(t, err)
}

func TestUserService_RecordLogin(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, err := services.UserService.Register(ctx, "+919876543210", "", "")
	require.NoError(t, err)
	require.Nil(t, user.LastLogin)

	require.NoError(t, services.UserService.RecordLogin(ctx, user.ID))

	fetched, err := services.UserService.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetched.LastLogin)
}

func TestUserService_DeleteByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, err := services.UserService.Register(ctx, "+919876543210", "", "")
	require.NoError(t, err)

	require.NoError(t, services.UserService.DeleteByID(ctx, user.ID))

	_, err = services.UserService.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestUserService_DeleteByID_RemovesConversations(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, err := services.UserService.Register(ctx, "+919876543210", "", "")
	require.NoError(t, err)

	result, err := services.ChatService.SendMessage(ctx, &user.ID, "", "When should I plant potatoes?", "en")
	require.NoError(t, err)

	require.NoError(t, services.UserService.DeleteByID(ctx, user.ID))

	history, err := services.ChatService.History(ctx, result.Conversation.SessionID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence/models"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "")

	err := ctx.UserRepo.Create(context.Background(), user)
	require.NoError(t, err)

	// Verify using GORM model (infrastructure concern)
	var createdUserModel models.UserModel
	err = ctx.DB.First(&createdUserModel, "id = ?", user.ID).Error
	require.NoError(t, err)
	assert.Equal(t, user.ID, createdUserModel.ID)
	assert.Equal(t, user.PhoneNumber, createdUserModel.PhoneNumber)
	assert.Equal(t, []string{"rice", "potato"}, createdUserModel.PrimaryCrops)
}

func TestUserSqliteRepository_Create_NonFarmer(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "+919876500001")
	user.IsFarmer = false
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsFarmer)
}

func TestUserSqliteRepository_Create_PhoneTaken(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	first := CreateTestUser(t, "")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), first))

	second := CreateTestUser(t, first.PhoneNumber)
	err := ctx.UserRepo.Create(context.Background(), second)
	assert.ErrorIs(t, err, users.ErrPhoneTaken)
}

func TestUserSqliteRepository_Create_InvalidUser(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := &users.User{} // Invalid - missing required fields

	err := ctx.UserRepo.Create(context.Background(), user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestUserSqliteRepository_GetByPhone(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	fetchedUser, err := ctx.UserRepo.GetByPhone(context.Background(), user.PhoneNumber)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetchedUser.ID)
}

func TestUserSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.GetByID(context.Background(), "non-existent-id")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestUserSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	user.PreferredLanguage = config.LanguageHindi
	district := "Ranchi"
	user.LocationDistrict = &district
	require.NoError(t, ctx.UserRepo.UpdateByID(context.Background(), user))

	// Verify update using GORM model
	var updatedUserModel models.UserModel
	require.NoError(t, ctx.DB.First(&updatedUserModel, "id = ?", user.ID).Error)
	assert.Equal(t, config.LanguageHindi, updatedUserModel.PreferredLanguage)
	require.NotNil(t, updatedUserModel.LocationDistrict)
	assert.Equal(t, "Ranchi", *updatedUserModel.LocationDistrict)
}

func TestUserSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))
	require.NoError(t, ctx.UserRepo.DeleteByID(context.Background(), user.ID))

	// Verify deletion using GORM model
	var deletedUserModel models.UserModel
	err := ctx.DB.First(&deletedUserModel, "id = ?", user.ID).Error
	assert.Error(t, err)
}

package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence/models"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	// Validate domain entity (business rules)
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Phone numbers are unique; surface the clash as a domain error
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("phone_number = ?", user.PhoneNumber).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check phone number: %w", err)
	}
	if count > 0 {
		return users.ErrPhoneTaken
	}

	// Convert to GORM model
	model := &models.UserModel{}
	model.FromDomain(user)

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByPhone(ctx context.Context, phoneNumber string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}

// DeleteByID removes the user together with their conversations, price alerts
// and scheme applications.
func (r *gormUserRepository) DeleteByID(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.ConversationModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user conversations: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.PriceAlertModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user alerts: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.ApplicationModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user applications: %w", err)
		}
		if err := tx.Where("id = ?", userID).Delete(&models.UserModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted user with id ", userID)
	return nil
}

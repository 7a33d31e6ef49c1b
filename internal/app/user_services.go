package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"
)

// userService implements the UserService interface for farmer accounts
type userService struct {
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo users.UserRepository, logger logger.Logger) (users.UserService, error) {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// Register creates a farmer account keyed by phone number.
func (s *userService) Register(ctx context.Context, phoneNumber, name, preferredLanguage string) (*users.User, error) {
	if preferredLanguage == "" {
		preferredLanguage = config.LanguageEnglish
	}

	now := time.Now()
	user := &users.User{
		ID:                uuid.NewString(),
		PhoneNumber:       phoneNumber,
		PreferredLanguage: preferredLanguage,
		LocationState:     config.DefaultState,
		IsFarmer:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if name != "" {
		user.Name = &name
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Registered user with phone ", phoneNumber)
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) GetByPhone(ctx context.Context, phoneNumber string) (*users.User, error) {
	return s.userRepo.GetByPhone(ctx, phoneNumber)
}

// UpdateProfile applies the non-nil fields of update to the user's profile.
func (s *userService) UpdateProfile(ctx context.Context, userID string, update users.ProfileUpdate) (*users.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = update.Name
	}
	if update.Email != nil {
		user.Email = update.Email
	}
	if update.PreferredLanguage != nil {
		user.PreferredLanguage = *update.PreferredLanguage
	}
	if update.LocationState != nil {
		user.LocationState = *update.LocationState
	}
	if update.LocationDistrict != nil {
		user.LocationDistrict = update.LocationDistrict
	}
	if update.LandSizeHectares != nil {
		landSize, err := decimal.NewFromString(*update.LandSizeHectares)
		if err != nil {
			return nil, fmt.Errorf("invalid land size: %w", err)
		}
		user.LandSizeHectares = &landSize
	}
	if update.PrimaryCrops != nil {
		user.PrimaryCrops = update.PrimaryCrops
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// RecordLogin stamps the user's last login time.
func (s *userService) RecordLogin(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	user.LastLogin = &now
	return s.userRepo.UpdateByID(ctx, user)
}

func (s *userService) DeleteByID(ctx context.Context, userID string) error {
	return s.userRepo.DeleteByID(ctx, userID)
}

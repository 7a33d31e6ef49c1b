package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/schemes"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"
)

// schemeService implements the SchemeService interface for government scheme
// lookups
type schemeService struct {
	schemeRepo schemes.SchemeRepository
	logger     logger.Logger
}

// NewSchemeService creates a new instance of SchemeService
func NewSchemeService(schemeRepo schemes.SchemeRepository, logger logger.Logger) (schemes.SchemeService, error) {
	return &schemeService{
		schemeRepo: schemeRepo,
		logger:     logger,
	}, nil
}

func (s *schemeService) List(ctx context.Context, query *schemes.SchemeQuery) ([]*schemes.Scheme, error) {
	if query == nil {
		query = &schemes.SchemeQuery{OnlyActive: true}
	}
	return s.schemeRepo.List(ctx, query)
}

func (s *schemeService) GetByCode(ctx context.Context, schemeCode string) (*schemes.Scheme, error) {
	if schemeCode == "" {
		return nil, fmt.Errorf("scheme code must not be empty")
	}
	return s.schemeRepo.GetByCode(ctx, schemeCode)
}

// Upsert creates the scheme or updates the one with the same code.
func (s *schemeService) Upsert(ctx context.Context, scheme *schemes.Scheme) (*schemes.Scheme, error) {
	now := time.Now()

	existing, err := s.schemeRepo.GetByCode(ctx, scheme.SchemeCode)
	switch {
	case err == nil:
		scheme.ID = existing.ID
		scheme.CreatedAt = existing.CreatedAt
		scheme.UpdatedAt = now
		if err := s.schemeRepo.UpdateByID(ctx, scheme); err != nil {
			return nil, err
		}
	case err == schemes.ErrSchemeNotFound:
		if scheme.ID == "" {
			scheme.ID = uuid.NewString()
		}
		scheme.CreatedAt = now
		scheme.UpdatedAt = now
		if err := s.schemeRepo.Create(ctx, scheme); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return scheme, nil
}

// applicationService implements the ApplicationService interface for scheme
// application tracking
type applicationService struct {
	applicationRepo schemes.ApplicationRepository
	schemeRepo      schemes.SchemeRepository
	userRepo        users.UserRepository
	logger          logger.Logger
}

// NewApplicationService creates a new instance of ApplicationService
func NewApplicationService(
	applicationRepo schemes.ApplicationRepository,
	schemeRepo schemes.SchemeRepository,
	userRepo users.UserRepository,
	logger logger.Logger,
) (schemes.ApplicationService, error) {
	return &applicationService{
		applicationRepo: applicationRepo,
		schemeRepo:      schemeRepo,
		userRepo:        userRepo,
		logger:          logger,
	}, nil
}

// Apply records an application of a user to a scheme.
func (s *applicationService) Apply(ctx context.Context, userID, schemeCode string, notes *string) (*schemes.Application, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	scheme, err := s.schemeRepo.GetByCode(ctx, schemeCode)
	if err != nil {
		return nil, err
	}
	if !scheme.IsActive {
		return nil, fmt.Errorf("scheme %s is no longer active", schemeCode)
	}
	if scheme.IsDeadlinePassed(time.Now()) {
		return nil, fmt.Errorf("application deadline for scheme %s has passed", schemeCode)
	}

	application := &schemes.Application{
		ID:              uuid.NewString(),
		UserID:          userID,
		SchemeID:        scheme.ID,
		ApplicationDate: time.Now(),
		Status:          schemes.StatusApplied,
		Notes:           notes,
		CreatedAt:       time.Now(),
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info("User ", userID, " applied to scheme ", schemeCode)
	return application, nil
}

func (s *applicationService) ListByUser(ctx context.Context, userID string) ([]*schemes.Application, error) {
	return s.applicationRepo.ListByUser(ctx, userID)
}

// UpdateStatus moves an application to a new status.
func (s *applicationService) UpdateStatus(ctx context.Context, applicationID, status string) (*schemes.Application, error) {
	if !schemes.IsValidStatus(status) {
		return nil, fmt.Errorf("invalid application status: %s", status)
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	application.Status = status
	if err := s.applicationRepo.UpdateByID(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

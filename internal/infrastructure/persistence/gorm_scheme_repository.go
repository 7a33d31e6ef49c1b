package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/schemes"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence/models"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSchemeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSchemeRepository creates a new GORM-based SchemeRepository implementation
func NewGormSchemeRepository(db *gorm.DB, logger logger.Logger) (schemes.SchemeRepository, error) {
	return &gormSchemeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSchemeRepository) Create(ctx context.Context, scheme *schemes.Scheme) error {
	// Validate domain entity (business rules)
	if err := scheme.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.SchemeModel{}
	model.FromDomain(scheme)

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create scheme: %w", err)
	}

	r.logger.Info("Created scheme with code ", scheme.SchemeCode)
	return nil
}

func (r *gormSchemeRepository) List(ctx context.Context, query *schemes.SchemeQuery) ([]*schemes.Scheme, error) {
	var modelList []*models.SchemeModel
	dbQuery := r.db.WithContext(ctx).Model(&models.SchemeModel{}).Order("name ASC")

	// Apply filters
	if query.Category != "" {
		dbQuery = dbQuery.Where("category = ?", query.Category)
	}
	if query.State != "" {
		dbQuery = dbQuery.Where("state IN ?", []string{query.State, "All India"})
	}
	if query.OnlyActive {
		dbQuery = dbQuery.Where("is_active = ?", true)
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch schemes: %w", err)
	}

	// Convert to domain models
	domainList := make([]*schemes.Scheme, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormSchemeRepository) GetByCode(ctx context.Context, schemeCode string) (*schemes.Scheme, error) {
	var model models.SchemeModel
	if err := r.db.WithContext(ctx).Where("scheme_code = ?", schemeCode).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schemes.ErrSchemeNotFound
		}
		return nil, fmt.Errorf("failed to fetch scheme: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSchemeRepository) UpdateByID(ctx context.Context, scheme *schemes.Scheme) error {
	if err := scheme.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SchemeModel{}
	model.FromDomain(scheme)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update scheme: %w", err)
	}

	r.logger.Info("Updated scheme with code ", scheme.SchemeCode)
	return nil
}

type gormApplicationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormApplicationRepository creates a new GORM-based ApplicationRepository implementation
func NewGormApplicationRepository(db *gorm.DB, logger logger.Logger) (schemes.ApplicationRepository, error) {
	return &gormApplicationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormApplicationRepository) Create(ctx context.Context, application *schemes.Application) error {
	if err := application.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ApplicationModel{}
	model.FromDomain(application)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	r.logger.Info("Created scheme application with id ", application.ID)
	return nil
}

func (r *gormApplicationRepository) GetByID(ctx context.Context, applicationID string) (*schemes.Application, error) {
	var model models.ApplicationModel
	if err := r.db.WithContext(ctx).Where("id = ?", applicationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application with ID %s not found", applicationID)
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormApplicationRepository) ListByUser(ctx context.Context, userID string) ([]*schemes.Application, error) {
	var modelList []*models.ApplicationModel
	if err := r.db.WithContext(ctx).Model(&models.ApplicationModel{}).
		Where("user_id = ?", userID).
		Order("application_date DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	domainList := make([]*schemes.Application, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormApplicationRepository) UpdateByID(ctx context.Context, application *schemes.Application) error {
	if err := application.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ApplicationModel{}
	model.FromDomain(application)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	r.logger.Info("Updated scheme application with id ", application.ID)
	return nil
}

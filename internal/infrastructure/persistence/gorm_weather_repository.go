package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence/models"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormObservationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormObservationRepository creates a new GORM-based ObservationRepository implementation
func NewGormObservationRepository(db *gorm.DB, logger logger.Logger) (weather.ObservationRepository, error) {
	return &gormObservationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormObservationRepository) Create(ctx context.Context, observation *weather.Observation) error {
	// Validate domain entity (business rules)
	if err := observation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.ObservationModel{}
	model.FromDomain(observation)

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create observation: %w", err)
	}

	r.logger.Info("Created weather observation with id ", observation.ID)
	return nil
}

func (r *gormObservationRepository) Newest(ctx context.Context, locationName string) (*weather.Observation, error) {
	var model models.ObservationModel
	err := r.db.WithContext(ctx).
		Where("location_name = ?", locationName).
		Order("observation_time DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch observation: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormObservationRepository) List(ctx context.Context, query *weather.HistoryQuery) ([]*weather.Observation, error) {
	var modelList []*models.ObservationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ObservationModel{}).
		Order("observation_time DESC")

	// Apply filters
	if query.LocationName != "" {
		dbQuery = dbQuery.Where("location_name = ?", query.LocationName)
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("observation_time >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("observation_time <= ?", query.To)
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch observations: %w", err)
	}

	// Convert to domain models
	domainList := make([]*weather.Observation, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

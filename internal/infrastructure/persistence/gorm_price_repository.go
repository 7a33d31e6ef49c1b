package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence/models"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPriceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPriceRepository creates a new GORM-based PriceRepository implementation
func NewGormPriceRepository(db *gorm.DB, logger logger.Logger) (markets.PriceRepository, error) {
	return &gormPriceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPriceRepository) Create(ctx context.Context, price *markets.CropPrice) error {
	// Validate domain entity (business rules)
	if err := price.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.CropPriceModel{}
	model.FromDomain(price)

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create crop price: %w", err)
	}

	r.logger.Info("Created crop price with id ", price.ID)
	return nil
}

func (r *gormPriceRepository) List(ctx context.Context, query *markets.PriceQuery) ([]*markets.CropPrice, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.CropPriceModel
	dbQuery := r.db.WithContext(ctx).Model(&models.CropPriceModel{})

	// Apply filters
	if query.CommodityName != "" {
		dbQuery = dbQuery.Where("commodity_name LIKE ?", "%"+query.CommodityName+"%")
	}
	if query.MarketName != "" {
		dbQuery = dbQuery.Where("market_name LIKE ?", "%"+query.MarketName+"%")
	}
	if query.State != "" {
		dbQuery = dbQuery.Where("state = ?", query.State)
	}
	if !query.ArrivalFrom.IsZero() {
		dbQuery = dbQuery.Where("arrival_date >= ?", query.ArrivalFrom)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch crop prices: %w", err)
	}

	// Convert to domain models
	domainList := make([]*markets.CropPrice, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormPriceRepository) LatestByCommodity(ctx context.Context, commodityName string) ([]*markets.CropPrice, error) {
	var modelList []*models.CropPriceModel
	if err := r.db.WithContext(ctx).Model(&models.CropPriceModel{}).
		Where("commodity_name = ?", commodityName).
		Order("arrival_date DESC, created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch crop prices: %w", err)
	}

	// Keep the newest quote per market; rows already arrive newest first
	seen := make(map[string]bool)
	var domainList []*markets.CropPrice
	for _, model := range modelList {
		if seen[model.MarketName] {
			continue
		}
		seen[model.MarketName] = true
		domainList = append(domainList, model.ToDomain())
	}

	return domainList, nil
}

func (r *gormPriceRepository) LatestTwo(ctx context.Context, commodityName, marketName string) ([]*markets.CropPrice, error) {
	var modelList []*models.CropPriceModel
	if err := r.db.WithContext(ctx).Model(&models.CropPriceModel{}).
		Where("commodity_name = ? AND market_name = ?", commodityName, marketName).
		Order("arrival_date DESC, created_at DESC").
		Limit(2).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch crop prices: %w", err)
	}

	domainList := make([]*markets.CropPrice, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

type gormAlertRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAlertRepository creates a new GORM-based AlertRepository implementation
func NewGormAlertRepository(db *gorm.DB, logger logger.Logger) (markets.AlertRepository, error) {
	return &gormAlertRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAlertRepository) Create(ctx context.Context, alert *markets.PriceAlert) error {
	if err := alert.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PriceAlertModel{}
	model.FromDomain(alert)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create price alert: %w", err)
	}

	r.logger.Info("Created price alert with id ", alert.ID)
	return nil
}

func (r *gormAlertRepository) ListByUser(ctx context.Context, userID string) ([]*markets.PriceAlert, error) {
	var modelList []*models.PriceAlertModel
	if err := r.db.WithContext(ctx).Model(&models.PriceAlertModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch price alerts: %w", err)
	}

	domainList := make([]*markets.PriceAlert, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormAlertRepository) GetByID(ctx context.Context, alertID string) (*markets.PriceAlert, error) {
	var model models.PriceAlertModel
	if err := r.db.WithContext(ctx).Where("id = ?", alertID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("price alert with ID %s not found", alertID)
		}
		return nil, fmt.Errorf("failed to fetch price alert: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAlertRepository) DeleteByID(ctx context.Context, alertID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", alertID).Delete(&models.PriceAlertModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete price alert: %w", err)
	}

	r.logger.Info("Deleted price alert with id ", alertID)
	return nil
}

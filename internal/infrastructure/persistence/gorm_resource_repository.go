package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/kparekh77/api-project-template/internal/domain/resources"
	"github.com/kparekh77/api-project-template/internal/infrastructure/persistence/models"
	"github.com/kparekh77/api-project-template/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormResourceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormResourceRepository creates a new GORM-based ResourceRepository implementation
func NewGormResourceRepository(db *gorm.DB, logger logger.Logger) (resources.ResourceRepository, error) {
	return &gormResourceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormResourceRepository) Create(ctx context.Context, resource *resources.Resource) error {
	if err := resource.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ResourceModel{}
	model.FromDomain(resource)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: name %q", resources.ErrConflict, resource.Name)
		}
		return fmt.Errorf("failed to create resource: %w", err)
	}

	r.logger.Info("Created resource with id ", resource.ID)
	return nil
}

func (r *gormResourceRepository) List(ctx context.Context, query *resources.ResourceQuery) ([]*resources.Resource, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ResourceModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ResourceModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name = ?", query.Name)
	}
	if !query.CreatedAfter.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.CreatedAfter)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch resources: %w", err)
	}

	domainList := make([]*resources.Resource, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormResourceRepository) GetByID(ctx context.Context, resourceID string) (*resources.Resource, error) {
	var model models.ResourceModel
	if err := r.db.WithContext(ctx).Where("id = ?", resourceID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", resources.ErrNotFound, resourceID)
		}
		return nil, fmt.Errorf("failed to fetch resource: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormResourceRepository) UpdateByID(ctx context.Context, resource *resources.Resource) error {
	if err := resource.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ResourceModel{}
	model.FromDomain(resource)

	result := r.db.WithContext(ctx).Model(&models.ResourceModel{}).Where("id = ?", resource.ID).Updates(map[string]interface{}{
		"name":              model.Name,
		"description":       model.Description,
		"date_time_updated": model.DateTimeUpdated,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: name %q", resources.ErrConflict, resource.Name)
		}
		return fmt.Errorf("failed to update resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %s", resources.ErrNotFound, resource.ID)
	}

	r.logger.Info("Updated resource with id ", resource.ID)
	return nil
}

func (r *gormResourceRepository) DeleteByID(ctx context.Context, resourceID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", resourceID).Delete(&models.ResourceModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %s", resources.ErrNotFound, resourceID)
	}

	r.logger.Info("Deleted resource with id ", resourceID)
	return nil
}

package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kparekh77/api-project-template/internal/domain/resources"
	"github.com/kparekh77/api-project-template/internal/pkg/logger"

	"github.com/google/uuid"
)

// resourceCreateService implements the ResourceCreateService interface
type resourceCreateService struct {
	resourceRepo resources.ResourceRepository
	logger       logger.Logger
}

// NewResourceCreateService creates a new resourceCreateService instance
func NewResourceCreateService(
	resourceRepo resources.ResourceRepository,
	logger logger.Logger,
) (resources.ResourceCreateService, error) {
	return &resourceCreateService{
		resourceRepo: resourceRepo,
		logger:       logger,
	}, nil
}

// Create persists a new resource with the given name and optional description.
// It returns the created Resource and any error encountered during the creation process.
func (s *resourceCreateService) Create(ctx context.Context, name string, description *string) (*resources.Resource, error) {
	now := time.Now().UTC()
	resource := &resources.Resource{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(name),
		Description:     description,
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}

	if err := resource.Validate(); err != nil {
		return nil, err
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	s.logger.Info("Created resource with id ", resource.ID)
	return resource, nil
}

// resourceMetadataService implements the ResourceMetadataService interface
type resourceMetadataService struct {
	resourceRepo resources.ResourceRepository
	logger       logger.Logger
}

// NewResourceMetadataService creates a new resourceMetadataService instance
func NewResourceMetadataService(
	resourceRepo resources.ResourceRepository,
	logger logger.Logger,
) (resources.ResourceMetadataService, error) {
	return &resourceMetadataService{
		resourceRepo: resourceRepo,
		logger:       logger,
	}, nil
}

// List retrieves all resources considering a query filter when set.
// It returns a slice of Resource and any error encountered during the retrieval process.
func (s *resourceMetadataService) List(ctx context.Context, query *resources.ResourceQuery) ([]*resources.Resource, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := s.resourceRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	return list, nil
}

// GetByID retrieves a resource by its unique ID.
// It returns the Resource and any error encountered during the retrieval process.
func (s *resourceMetadataService) GetByID(ctx context.Context, resourceID string) (*resources.Resource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	return resource, nil
}

// DeleteByID deletes a resource by ID.
// It returns any error encountered during the deletion process.
func (s *resourceMetadataService) DeleteByID(ctx context.Context, resourceID string) error {
	if err := s.resourceRepo.DeleteByID(ctx, resourceID); err != nil {
		return err
	}

	s.logger.Info("Deleted resource with id ", resourceID)
	return nil
}

// resourceUpdateService implements the ResourceUpdateService interface
type resourceUpdateService struct {
	resourceRepo resources.ResourceRepository
	logger       logger.Logger
}

// NewResourceUpdateService creates a new resourceUpdateService instance
func NewResourceUpdateService(
	resourceRepo resources.ResourceRepository,
	logger logger.Logger,
) (resources.ResourceUpdateService, error) {
	return &resourceUpdateService{
		resourceRepo: resourceRepo,
		logger:       logger,
	}, nil
}

// UpdateByID replaces the mutable fields of a resource. For full updates
// (partial=false), a nil description clears the stored description. For
// partial updates (partial=true), nil fields keep their stored values.
func (s *resourceUpdateService) UpdateByID(ctx context.Context, resourceID string, name *string, description *string, partial bool) (*resources.Resource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		resource.Name = strings.TrimSpace(*name)
	} else if !partial {
		return nil, fmt.Errorf("%w: name is required for full updates", resources.ErrValidation)
	}

	if description != nil {
		resource.Description = description
	} else if !partial {
		resource.Description = nil
	}

	resource.DateTimeUpdated = time.Now().UTC()

	if err := resource.Validate(); err != nil {
		return nil, err
	}

	if err := s.resourceRepo.UpdateByID(ctx, resource); err != nil {
		return nil, err
	}

	s.logger.Info("Updated resource with id ", resource.ID)
	return resource, nil
}

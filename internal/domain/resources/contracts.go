package resources

import (
	"context"
)

// ResourceCreateService defines methods for creating resources.
type ResourceCreateService interface {
	// Create persists a new resource with the given name and optional description.
	// It returns the created Resource and any error encountered during the creation process.
	Create(ctx context.Context, name string, description *string) (*Resource, error)
}

// ResourceMetadataService defines methods for reading and deleting resources.
type ResourceMetadataService interface {
	// List retrieves all resources considering a query filter when set.
	// It returns a slice of Resource and any error encountered during the retrieval process.
	List(ctx context.Context, query *ResourceQuery) ([]*Resource, error)

	// GetByID retrieves a resource by its unique ID.
	// It returns the Resource and any error encountered during the retrieval process.
	GetByID(ctx context.Context, resourceID string) (*Resource, error)

	// DeleteByID deletes a resource by ID.
	// It returns any error encountered during the deletion process.
	DeleteByID(ctx context.Context, resourceID string) error
}

// ResourceUpdateService defines methods for updating resources.
type ResourceUpdateService interface {
	// UpdateByID replaces the mutable fields of a resource. Nil fields are
	// treated as "clear" for full updates and "keep" for partial updates,
	// controlled by partial.
	UpdateByID(ctx context.Context, resourceID string, name *string, description *string, partial bool) (*Resource, error)
}

// ResourceRepository defines the interface for resource persistence operations
type ResourceRepository interface {
	Create(ctx context.Context, resource *Resource) error
	List(ctx context.Context, query *ResourceQuery) ([]*Resource, error)
	GetByID(ctx context.Context, resourceID string) (*Resource, error)
	UpdateByID(ctx context.Context, resource *Resource) error
	DeleteByID(ctx context.Context, resourceID string) error
}

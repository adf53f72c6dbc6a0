//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/kparekh77/api-project-template/internal/domain/resources"

	"github.com/stretchr/testify/mock"
)

// MockResourceCreateService is a mock implementation of ResourceCreateService
type MockResourceCreateService struct {
	mock.Mock
}

func (m *MockResourceCreateService) Create(ctx context.Context, name string, description *string) (*resources.Resource, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resources.Resource), args.Error(1)
}

// MockResourceMetadataService is a mock implementation of ResourceMetadataService
type MockResourceMetadataService struct {
	mock.Mock
}

func (m *MockResourceMetadataService) List(ctx context.Context, query *resources.ResourceQuery) ([]*resources.Resource, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resources.Resource), args.Error(1)
}

func (m *MockResourceMetadataService) GetByID(ctx context.Context, resourceID string) (*resources.Resource, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resources.Resource), args.Error(1)
}

func (m *MockResourceMetadataService) DeleteByID(ctx context.Context, resourceID string) error {
	args := m.Called(ctx, resourceID)
	return args.Error(0)
}

// MockResourceUpdateService is a mock implementation of ResourceUpdateService
type MockResourceUpdateService struct {
	mock.Mock
}

func (m *MockResourceUpdateService) UpdateByID(ctx context.Context, resourceID string, name *string, description *string, partial bool) (*resources.Resource, error) {
	args := m.Called(ctx, resourceID, name, description, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resources.Resource), args.Error(1)
}

//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/kparekh77/api-project-template/internal/domain/resources"
	"github.com/kparekh77/api-project-template/internal/infrastructure/persistence"
	"github.com/kparekh77/api-project-template/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	ResourceCreateService   resources.ResourceCreateService
	ResourceMetadataService resources.ResourceMetadataService
	ResourceUpdateService   resources.ResourceUpdateService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	createService, err := NewResourceCreateService(dbContext.ResourceRepo, logger)
	require.NoError(t, err, "Failed to create resource create service")

	metadataService, err := NewResourceMetadataService(dbContext.ResourceRepo, logger)
	require.NoError(t, err, "Failed to create resource metadata service")

	updateService, err := NewResourceUpdateService(dbContext.ResourceRepo, logger)
	require.NoError(t, err, "Failed to create resource update service")

	return &TestServices{
		ResourceCreateService:   createService,
		ResourceMetadataService: metadataService,
		ResourceUpdateService:   updateService,
		DBContext:               dbContext,
	}
}

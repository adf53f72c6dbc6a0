//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kparekh77/api-project-template/internal/domain/resources"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockResourceCreateService := new(MockResourceCreateService)
	mockResourceMetadataService := new(MockResourceMetadataService)
	mockResourceUpdateService := new(MockResourceUpdateService)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	r := gin.Default()

	resource := testResource()
	mockResourceCreateService.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(resource, nil)
	mockResourceMetadataService.On("List", mock.Anything, mock.Anything).Return([]*resources.Resource{}, nil)
	mockResourceMetadataService.On("GetByID", mock.Anything, mock.Anything).Return(resource, nil)
	mockResourceMetadataService.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)
	mockResourceUpdateService.On("UpdateByID", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(resource, nil)

	SetupRoutes(r, db, mockResourceCreateService, mockResourceMetadataService, mockResourceUpdateService)

	// Verify routes are registered by testing they respond (even with errors)
	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/health"},
		{"GET", "/ready"},
		{"POST", "/api/v1/resources"},
		{"GET", "/api/v1/resources"},
		{"GET", "/api/v1/resources/123"},
		{"PUT", "/api/v1/resources/123"},
		{"PATCH", "/api/v1/resources/123"},
		{"DELETE", "/api/v1/resources/123"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404 from the router itself)
			if tt.method == "POST" || tt.method == "PUT" || tt.method == "PATCH" {
				assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
			} else {
				assert.NotEqual(t, http.StatusMethodNotAllowed, w.Code, "Route should be registered")
			}
		})
	}
}

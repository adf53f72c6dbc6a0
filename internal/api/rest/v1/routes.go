package v1

import (
	"github.com/kparekh77/api-project-template/internal/domain/resources"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	db *gorm.DB,
	resourceCreateService resources.ResourceCreateService,
	resourceMetadataService resources.ResourceMetadataService,
	resourceUpdateService resources.ResourceUpdateService) {

	// Health Routes
	healthHandler := NewHealthHandler(db)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	v1 := r.Group(BasePath) // lookup in version file

	// Resources Routes
	resourceHandler := NewResourceHandler(resourceCreateService, resourceMetadataService, resourceUpdateService)
	v1.POST("/resources", resourceHandler.Create)
	v1.GET("/resources", resourceHandler.List)
	v1.GET("/resources/:id", resourceHandler.GetByID)
	v1.PUT("/resources/:id", resourceHandler.Replace)
	v1.PATCH("/resources/:id", resourceHandler.Patch)
	v1.DELETE("/resources/:id", resourceHandler.DeleteByID)
}

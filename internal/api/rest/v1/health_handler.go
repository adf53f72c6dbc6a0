package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/kparekh77/api-project-template/internal/pkg/problems"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const readinessTimeout = 2 * time.Second

// HealthHandler defines the interface for handling health probe operations
type HealthHandler interface {
	Health(ctx *gin.Context)
	Ready(ctx *gin.Context)
}

// HealthHandler struct holds the database handle probed for readiness
type healthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *gorm.DB) HealthHandler {
	return &healthHandler{
		db: db,
	}
}

// Health handles the GET request for the liveness probe
// @Summary Liveness probe
// @Description Report that the service process is up. Does not check dependencies.
// @Tags Health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /health [get]
func (handler *healthHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, StatusResponse{
		Status:  "OK",
		Message: "Service is healthy.",
	})
}

// Ready handles the GET request for the readiness probe
// @Summary Readiness probe
// @Description Report whether the service can reach its database.
// @Tags Health
// @Success 200
// @Failure 503 {object} problems.Problem
// @Router /ready [get]
func (handler *healthHandler) Ready(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), readinessTimeout)
	defer cancel()

	sqlDB, err := handler.db.DB()
	if err != nil {
		problems.AbortWithProblem(ctx, http.StatusServiceUnavailable, "database handle unavailable")
		return
	}

	if err := sqlDB.PingContext(pingCtx); err != nil {
		problems.AbortWithProblem(ctx, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	ctx.Status(http.StatusOK)
}

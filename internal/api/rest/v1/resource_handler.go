package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kparekh77/api-project-template/internal/domain/resources"
	"github.com/kparekh77/api-project-template/internal/pkg/problems"

	"github.com/gin-gonic/gin"
)

// ResourceHandler defines the interface for handling resource-related operations
type ResourceHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Replace(ctx *gin.Context)
	Patch(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// ResourceHandler struct holds the services
type resourceHandler struct {
	resourceCreateService   resources.ResourceCreateService
	resourceMetadataService resources.ResourceMetadataService
	resourceUpdateService   resources.ResourceUpdateService
}

// NewResourceHandler creates a new ResourceHandler
func NewResourceHandler(resourceCreateService resources.ResourceCreateService, resourceMetadataService resources.ResourceMetadataService, resourceUpdateService resources.ResourceUpdateService) ResourceHandler {
	return &resourceHandler{
		resourceCreateService:   resourceCreateService,
		resourceMetadataService: resourceMetadataService,
		resourceUpdateService:   resourceUpdateService,
	}
}

// Create handles the POST request to create a resource
// @Summary Create a resource
// @Description Create a resource with a unique name and an optional description.
// @Tags Resource
// @Accept json
// @Produce json
// @Param requestBody body CreateResourceRequest true "Resource Data"
// @Success 201 {object} ResourceResponse
// @Failure 400 {object} problems.Problem
// @Failure 409 {object} problems.Problem
// @Router /resources [post]
func (handler *resourceHandler) Create(ctx *gin.Context) {

	var request CreateResourceRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		problems.New(http.StatusBadRequest, fmt.Sprintf("invalid resource data: %v", err.Error())).WithType(problems.TypeHTTP).Render(ctx)
		return
	}

	if err := request.Validate(); err != nil {
		problems.AbortWithValidationError(ctx, err)
		return
	}

	resource, err := handler.resourceCreateService.Create(ctx, request.Name, request.Description)
	if err != nil {
		problems.AbortWithDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewResourceResponse(resource))
}

// List handles the GET request to list resources with optional query parameters
// @Summary List resources based on query parameters
// @Description Fetch a list of resources filtered by name and creation date, with pagination and sorting options.
// @Tags Resource
// @Accept json
// @Produce json
// @Param name query string false "Resource name filter"
// @Param createdAfter query string false "Creation date lower bound (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} ResourceResponse
// @Failure 400 {object} problems.Problem
// @Router /resources [get]
func (handler *resourceHandler) List(ctx *gin.Context) {
	query := resources.NewResourceQuery()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	if createdAfter := ctx.Query("createdAfter"); len(createdAfter) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, createdAfter)
		if err != nil {
			problems.AbortWithValidationError(ctx, fmt.Errorf("invalid createdAfter value: %w", err))
			return
		}
		query.CreatedAfter = parsedTime
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			problems.AbortWithValidationError(ctx, fmt.Errorf("invalid limit value: %w", err))
			return
		}
		query.Limit = parsed
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		parsed, err := strconv.Atoi(offset)
		if err != nil {
			problems.AbortWithValidationError(ctx, fmt.Errorf("invalid offset value: %w", err))
			return
		}
		query.Offset = parsed
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		problems.AbortWithDomainError(ctx, err)
		return
	}

	resourceList, err := handler.resourceMetadataService.List(ctx, query)
	if err != nil {
		problems.AbortWithDomainError(ctx, err)
		return
	}

	var listResponse = []ResourceResponse{}
	for _, resource := range resourceList {
		listResponse = append(listResponse, NewResourceResponse(resource))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a resource by ID
// @Summary Retrieve a resource by ID
// @Description Fetch a single resource by ID, including its description and timestamps.
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} ResourceResponse
// @Failure 404 {object} problems.Problem
// @Router /resources/{id} [get]
func (handler *resourceHandler) GetByID(ctx *gin.Context) {
	resourceID := ctx.Param("id")

	resource, err := handler.resourceMetadataService.GetByID(ctx, resourceID)
	if err != nil {
		problems.AbortWithDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewResourceResponse(resource))
}

// Replace handles the PUT request to replace a resource by ID
// @Summary Replace a resource by ID
// @Description Replace the mutable fields of a resource. Omitted fields are cleared.
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param requestBody body UpdateResourceRequest true "Resource Data"
// @Success 200 {object} ResourceResponse
// @Failure 400 {object} problems.Problem
// @Failure 404 {object} problems.Problem
// @Failure 409 {object} problems.Problem
// @Router /resources/{id} [put]
func (handler *resourceHandler) Replace(ctx *gin.Context) {
	handler.update(ctx, false)
}

// Patch handles the PATCH request to partially update a resource by ID
// @Summary Partially update a resource by ID
// @Description Update the provided fields of a resource. Omitted fields keep their value.
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param requestBody body UpdateResourceRequest true "Resource Data"
// @Success 200 {object} ResourceResponse
// @Failure 400 {object} problems.Problem
// @Failure 404 {object} problems.Problem
// @Failure 409 {object} problems.Problem
// @Router /resources/{id} [patch]
func (handler *resourceHandler) Patch(ctx *gin.Context) {
	handler.update(ctx, true)
}

func (handler *resourceHandler) update(ctx *gin.Context, partial bool) {
	resourceID := ctx.Param("id")

	var request UpdateResourceRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		problems.New(http.StatusBadRequest, fmt.Sprintf("invalid resource data: %v", err.Error())).WithType(problems.TypeHTTP).Render(ctx)
		return
	}

	if err := request.Validate(); err != nil {
		problems.AbortWithValidationError(ctx, err)
		return
	}

	resource, err := handler.resourceUpdateService.UpdateByID(ctx, resourceID, request.Name, request.Description, partial)
	if err != nil {
		problems.AbortWithDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewResourceResponse(resource))
}

// DeleteByID handles the DELETE request to delete a resource by ID
// @Summary Delete a resource by ID
// @Description Delete a specific resource by ID.
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Success 204
// @Failure 404 {object} problems.Problem
// @Router /resources/{id} [delete]
func (handler *resourceHandler) DeleteByID(ctx *gin.Context) {
	resourceID := ctx.Param("id")

	if err := handler.resourceMetadataService.DeleteByID(ctx, resourceID); err != nil {
		problems.AbortWithDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/kparekh77/api-project-template/internal/domain/resources"
	"github.com/kparekh77/api-project-template/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// CreateResourceRequest is the payload for creating a new resource
type CreateResourceRequest struct {
	Name        string  `json:"name" validate:"required,notBlankValidation,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1024"`
}

// Validate for validating CreateResourceRequest struct
func (r *CreateResourceRequest) Validate() error {
	return validateStruct(r)
}

// UpdateResourceRequest is the payload for full and partial resource updates.
// All fields are optional so the same payload serves PUT and PATCH; the
// service layer decides how nil fields are treated.
type UpdateResourceRequest struct {
	Name        *string `json:"name" validate:"omitempty,notBlankValidation,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1024"`
}

// Validate for validating UpdateResourceRequest struct
func (r *UpdateResourceRequest) Validate() error {
	return validateStruct(r)
}

// ResourceResponse is the wire representation of a resource
type ResourceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	DateTimeUpdated time.Time `json:"dateTimeUpdated"`
}

// NewResourceResponse converts a domain resource into its wire representation
func NewResourceResponse(resource *resources.Resource) ResourceResponse {
	return ResourceResponse{
		ID:              resource.ID,
		Name:            resource.Name,
		Description:     resource.Description,
		DateTimeCreated: resource.DateTimeCreated,
		DateTimeUpdated: resource.DateTimeUpdated,
	}
}

// StatusResponse is the liveness probe payload
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	if err := validate.RegisterValidation("notBlankValidation", validators.NotBlankValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return fmt.Errorf("validation failed: %w", validationErrors)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

package resources

import (
	"errors"
	"fmt"
	"time"

	"github.com/kparekh77/api-project-template/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Resource entity
type Resource struct {
	ID              string    `validate:"required,uuid4"`
	Name            string    `validate:"required,notBlankValidation,max=255"`
	Description     *string   `validate:"omitempty,max=1024"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time `validate:"required"`
}

// Validate for validating Resource struct
func (r *Resource) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("notBlankValidation", validators.NotBlankValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", ErrValidation, messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// ResourceQuery represents the filter, pagination and sorting options for listing resources
type ResourceQuery struct {
	Name         string    `validate:"omitempty,max=255"`
	CreatedAfter time.Time `validate:"omitempty"`

	SortBy    string `validate:"omitempty,oneof=name date_time_created date_time_updated"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
}

// NewResourceQuery creates a ResourceQuery with default pagination and sorting
func NewResourceQuery() *ResourceQuery {
	return &ResourceQuery{
		SortBy:    "date_time_created",
		SortOrder: "asc",
		Limit:     100,
		Offset:    0,
	}
}

// Validate for validating ResourceQuery struct
func (q *ResourceQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", ErrValidation, messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

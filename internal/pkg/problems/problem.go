// Package problems implements RFC 7807 problem details for HTTP APIs.
// Handlers convert errors into Problem values which are rendered as
// application/problem+json response bodies.
package problems

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kparekh77/api-project-template/internal/domain/resources"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// MediaType is the content type of RFC 7807 response bodies.
const MediaType = "application/problem+json"

// Problem type identifiers. The generic fallback is TypeProblem.
const (
	TypeProblem    = "exception:problem"
	TypeHTTP       = "exception:http"
	TypeValidation = "exception:validation"
	TypeUncaught   = "exception:uncaught"
)

// Problem models a "problem" as defined in RFC 7807.
//
// Default values are applied to the Type, Status and Title fields when they
// are left unspecified.
type Problem struct {
	Type     string                   `json:"type"`
	Title    string                   `json:"title"`
	Status   int                      `json:"status"`
	Detail   string                   `json:"detail,omitempty"`
	Instance string                   `json:"instance,omitempty"`
	Errors   []map[string]interface{} `json:"errors,omitempty"`
}

// New creates a Problem with defaults applied.
func New(status int, detail string) *Problem {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Problem{
		Type:   TypeProblem,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}

// WithType sets the problem type identifier.
func (p *Problem) WithType(problemType string) *Problem {
	p.Type = problemType
	return p
}

// WithInstance sets the request path the problem occurred on.
func (p *Problem) WithInstance(instance string) *Problem {
	p.Instance = instance
	return p
}

// WithErrors attaches supplemental error context.
func (p *Problem) WithErrors(errs []map[string]interface{}) *Problem {
	p.Errors = errs
	return p
}

// FromDomainError maps known domain errors onto HTTP problem statuses.
// Unrecognised errors become 500 with an uncaught type so they stand out
// in logs and dashboards.
func FromDomainError(err error, instance string) *Problem {
	var status int
	problemType := TypeProblem

	switch {
	case errors.Is(err, resources.ErrValidation):
		status = http.StatusBadRequest
		problemType = TypeValidation
	case errors.Is(err, resources.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, resources.ErrConflict):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		problemType = TypeUncaught
	}

	return New(status, err.Error()).WithType(problemType).WithInstance(instance)
}

// FromValidationError builds a 400 problem from a request validation failure.
// When the error carries validator field errors, each offending field is
// listed in the problem's errors array.
func FromValidationError(err error, instance string) *Problem {
	problem := New(http.StatusBadRequest, err.Error()).
		WithType(TypeValidation).
		WithInstance(instance)

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		errs := make([]map[string]interface{}, 0, len(fieldErrors))
		var messages []string
		for _, fieldErr := range fieldErrors {
			errs = append(errs, map[string]interface{}{
				"field": fieldErr.Field(),
				"rule":  fieldErr.Tag(),
			})
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		problem.Detail = fmt.Sprintf("validation failed: %v", messages)
		problem.WithErrors(errs)
	}

	return problem
}

// Render writes the problem to the gin context with the RFC 7807 media type
// and aborts the handler chain.
func (p *Problem) Render(ctx *gin.Context) {
	if p.Instance == "" {
		p.Instance = ctx.Request.URL.Path
	}
	ctx.Header("Content-Type", MediaType)
	ctx.AbortWithStatusJSON(p.Status, p)
}

// AbortWithProblem is a convenience helper for handlers: it builds a problem
// from the given status and detail and renders it.
func AbortWithProblem(ctx *gin.Context, status int, detail string) {
	New(status, detail).Render(ctx)
}

// AbortWithDomainError maps a domain error and renders the resulting problem.
func AbortWithDomainError(ctx *gin.Context, err error) {
	FromDomainError(err, ctx.Request.URL.Path).Render(ctx)
}

// AbortWithValidationError renders a request validation failure as a 400
// problem carrying per-field error context where available.
func AbortWithValidationError(ctx *gin.Context, err error) {
	FromValidationError(err, ctx.Request.URL.Path).Render(ctx)
}

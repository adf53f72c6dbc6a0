package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationIDHeader is a unique identifier value attached to requests and
// messages that allows reference to a particular transaction or event chain
// across services. Also known as a transit ID.
const CorrelationIDHeader = "x-correlation-id"

// correlationIDKey is the gin context key the correlation ID is stored under.
const correlationIDKey = "correlation_id"

// Traceability ensures every request carries a correlation ID. An inbound
// x-correlation-id header is honored; otherwise a new hex-encoded UUID is
// generated. The ID is stored on the context and echoed on the response.
func Traceability() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		correlationID := ctx.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = strings.ReplaceAll(uuid.New().String(), "-", "")
		}

		ctx.Set(correlationIDKey, correlationID)
		ctx.Header(CorrelationIDHeader, correlationID)

		ctx.Next()
	}
}

// GetCorrelationID returns the correlation ID for the current request, or
// "NONE" when the traceability middleware did not run.
func GetCorrelationID(ctx *gin.Context) string {
	if id, ok := ctx.Get(correlationIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return "NONE"
}

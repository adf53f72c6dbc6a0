package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/kparekh77/api-project-template/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader uniquely identifies and couples every request/response pair
// handled by the service. When the request already contains a request ID it is
// reused, as upstream systems may rely on it for traceability.
const RequestIDHeader = "x-request-id"

// SourceHeader names the system that sent the request.
const SourceHeader = "x-source"

// RequestLogging logs one line for the incoming request and one for the
// outgoing response, including method, path, status, duration and the
// request/correlation IDs. Paths in excludePaths are skipped (health probes
// and documentation endpoints would otherwise drown the log).
func RequestLogging(log logger.Logger, excludePaths []string) gin.HandlerFunc {
	normalisedExcludes := make([]string, len(excludePaths))
	for i, path := range excludePaths {
		normalisedExcludes[i] = normalisePath(path)
	}

	return func(ctx *gin.Context) {
		path := normalisePath(ctx.Request.URL.Path)
		for _, excluded := range normalisedExcludes {
			if path == excluded {
				ctx.Next()
				return
			}
		}

		start := time.Now()

		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = strings.ReplaceAll(uuid.New().String(), "-", "")
		}
		ctx.Header(RequestIDHeader, requestID)

		log.Info(fmt.Sprintf("INCOMING REQUEST method=%s path=%s request_id=%s correlation_id=%s source=%s",
			ctx.Request.Method,
			ctx.Request.URL.Path,
			requestID,
			GetCorrelationID(ctx),
			ctx.GetHeader(SourceHeader),
		))

		ctx.Next()

		durationMs := time.Since(start).Milliseconds()
		log.Info(fmt.Sprintf("OUTGOING RESPONSE status=%d duration_ms=%d request_id=%s correlation_id=%s",
			ctx.Writer.Status(),
			durationMs,
			requestID,
			GetCorrelationID(ctx),
		))
	}
}

// normalisePath strips trailing slashes so /health and /health/ compare equal.
func normalisePath(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

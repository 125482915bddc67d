package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDHeader is the inbound/outbound correlation header.
const TraceIDHeader = "X-Trace-Id"

// TraceID accepts an inbound X-Trace-Id header or generates a fresh
// UUID, sets it in the Gin context (key "trace_id") and echoes it on
// the response so clients can correlate logs.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(TraceIDHeader))
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("trace_id", id)
		c.Header(TraceIDHeader, id)
		c.Next()
	}
}

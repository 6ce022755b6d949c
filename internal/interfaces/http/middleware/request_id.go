package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is honored when an upstream proxy already tagged the
	// request, and the resolved ID is echoed back on the response under it.
	RequestIDHeader = "X-Request-ID"

	RequestIDKey = "request_id"
)

// RequestIDMiddleware tags every request with an ID for log correlation
// across the CRM handlers.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		// Mirror into the request context under the string key pkg/logger
		// reads, so logger.WithContext picks it up.
		ctx := context.WithValue(c.Request.Context(), "request_id", id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

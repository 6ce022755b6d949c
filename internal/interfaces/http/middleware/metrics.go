package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"sales-crm.backend/pkg/metrics"
)

// MetricsMiddleware records request duration and status counts per route
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

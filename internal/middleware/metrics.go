package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hr-agent/pkg/metrics"
)

// Metrics counts requests by method, route template and status.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

package middleware

import (
	"strconv"

	"movie-discovery-backend/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics counts every request by route template, method, and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(
			route,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

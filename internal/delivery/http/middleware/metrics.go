package middleware

import (
	"strconv"
	"time"

	"go-interview-scheduler/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency per route. The route label
// uses the gin template path ("/v1/specialists/:id"), not the raw URL,
// to keep label cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, route,
		).Observe(time.Since(start).Seconds())
	}
}

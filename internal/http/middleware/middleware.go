// Package middleware holds router-level gin middleware that depends on application metrics.
package middleware

import (
	"strconv"
	"time"

	"github.com/Wim1201/locatie-informatie-v5/platform/metrics"

	"github.com/gin-gonic/gin"
)

// RequestTimer observes handler latency in the request duration histogram.
// Unmatched routes are grouped under "unmatched" to keep label cardinality bounded.
func RequestTimer() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

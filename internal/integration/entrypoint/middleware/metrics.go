package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels requests that did not hit a registered route.
const unmatchedRoute = "unmatched"

// HTTPRecorder receives one observation per finished request.
type HTTPRecorder interface {
	RecordHTTPRequest(method, path string, status int, elapsed time.Duration)
}

// Metrics returns a Gin middleware that records request counts and latency
// per route template.
func Metrics(recorder HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		recorder.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

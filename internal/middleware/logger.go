// internal/middleware/logger.go
// Request logging middleware

package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger creates a custom logging middleware
func Logger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		logger.Printf("[%s] %s %s %d %v %s %s",
			c.GetString("request_id"),
			c.ClientIP(),
			c.Request.Method,
			c.Writer.Status(),
			latency,
			path,
			c.Errors.ByType(gin.ErrorTypePrivate).String(),
		)
	}
}

// internal/middleware/maintenance.go
// Maintenance mode switch

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaintenanceMode rejects all traffic while the flag is set
func MaintenanceMode() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "service temporarily unavailable for maintenance",
		})
		c.Abort()
	}
}

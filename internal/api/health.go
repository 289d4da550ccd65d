// internal/api/health.go
// Health check endpoint for monitoring

package api

import (
	"net/http"
	"time"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/config"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/database"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns a health check handler that also pings the stores
func HealthCheck(cfg *config.Config, db *database.Connections) gin.HandlerFunc {
	return func(c *gin.Context) {
		stores := "operational"
		status := http.StatusOK
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			stores = err.Error()
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"status":      "healthy",
			"environment": cfg.Environment,
			"time":        time.Now().UTC(),
			"services": gin.H{
				"api":    "operational",
				"stores": stores,
			},
		})
	}
}

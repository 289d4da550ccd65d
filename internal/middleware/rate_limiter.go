// internal/middleware/rate_limiter.go
// Redis-backed rate limiting

package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/services"

	"github.com/gin-gonic/gin"
)

// RateLimiter limits clients to a fixed request budget per minute
func RateLimiter(cache *services.CacheService) gin.HandlerFunc {
	const limit = 100
	const window = time.Minute

	return func(c *gin.Context) {
		var key string
		if userID, exists := c.Get("user_id"); exists {
			key = fmt.Sprintf("rate_limit:user:%s", userID)
		} else {
			key = fmt.Sprintf("rate_limit:ip:%s", c.ClientIP())
		}

		count, err := cache.Increment(key, window)
		if err != nil {
			// Don't block traffic when the limiter's backing store is down
			c.Next()
			return
		}

		if count > limit {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": window.Seconds(),
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", limit-count))
		c.Next()
	}
}

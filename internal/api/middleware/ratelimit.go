package middleware

import (
	"net/http"
	"strconv"

	"newsroom-backend/internal/logger"
	"newsroom-backend/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit enforces the per-client request budget. The window state
// lives in the injected limiter; a limiter failure is logged and the
// request proceeds.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	log := logger.WithComponent("ratelimit")

	return func(c *gin.Context) {
		result, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.WithError(err).Warn("rate limiter unavailable")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}

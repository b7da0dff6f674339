package middleware

import (
	"net/http"
	"runtime/debug"

	"newsroom-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into 500 responses and logs the stack
func Recovery() gin.HandlerFunc {
	log := logger.WithComponent("recovery")

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic":      r,
					"path":       c.Request.URL.Path,
					"request_id": GetRequestID(c),
					"stack":      string(debug.Stack()),
				}).Error("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

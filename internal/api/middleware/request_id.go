package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request correlation ID
const RequestIDHeader = "X-Request-ID"

const requestIDContextKey = "request_id"

// RequestID assigns each request a correlation ID, honoring one supplied
// by the client, and echoes it on the response
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID extracts the correlation ID from the request context
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDContextKey)
}

package auth

import (
	"net/http"
	"strings"

	"newsroom-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

// CookieName is the HTTP-only cookie carrying the credential
const CookieName = "token"

const actorContextKey = "actor"

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates the credential from the token cookie or the
// Authorization header and sets the actor in the request context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(actorContextKey, claims.Actor())
		c.Next()
	}
}

// OptionalAuth resolves the actor when a valid credential is present
// but never rejects the request. Used on logout so stale sessions can
// still clear their cookie.
func (m *Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString != "" {
			if claims, err := m.service.ValidateToken(tokenString); err == nil {
				c.Set(actorContextKey, claims.Actor())
			}
		}
		c.Next()
	}
}

// RequireRole enforces that the authenticated actor holds one of the
// allowed roles. Role policy is declared once per route group, never
// re-implemented inside handlers.
func (m *Middleware) RequireRole(allowed ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		for _, role := range allowed {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
		c.Abort()
	}
}

// extractToken reads the credential from the token cookie first, then the
// Authorization Bearer header
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return tokenString
}

// GetActor extracts the authenticated actor from the request context
func GetActor(c *gin.Context) (*Actor, bool) {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return nil, false
	}

	actor, ok := value.(*Actor)
	return actor, ok
}

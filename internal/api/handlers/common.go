package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"newsroom-backend/internal/audit"
	"newsroom-backend/internal/auth"
	apperrors "newsroom-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// respondError maps a service error onto an HTTP status and JSON body
func respondError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrArticleLocked):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &fieldErrs),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidRole),
		errors.Is(err, apperrors.ErrInvalidRange),
		errors.Is(err, apperrors.ErrInvalidPaginationParams):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsExternal(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// mustActor extracts the authenticated actor set by the auth middleware.
// Routes using it are always registered behind RequireAuth.
func mustActor(c *gin.Context) (*auth.Actor, bool) {
	actor, ok := auth.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}
	return actor, true
}

// requestMeta captures the client address and agent for the audit trail
func requestMeta(c *gin.Context) audit.RequestMeta {
	return audit.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads page and limit query parameters
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}

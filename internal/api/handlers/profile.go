package handlers

import (
	"net/http"

	"newsroom-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles self-service account endpoints
type ProfileHandler struct {
	userService service.UserServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(userService service.UserServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
	}
}

// GetProfile returns the authenticated user's own account
// @Summary Get profile
// @Description Get the authenticated user's own account details
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} service.UserResponse "Profile"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	resp, err := h.userService.GetProfile(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// UpdateProfile updates the authenticated user's own account
// @Summary Update profile
// @Description Update the authenticated user's display name
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Profile update"
// @Success 200 {object} service.UserResponse "Updated profile"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.userService.UpdateProfile(c.Request.Context(), actor, &req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// ChangePassword changes the authenticated user's password
// @Summary Change password
// @Description Change the authenticated user's password after verifying the current one
// @Tags profile
// @Accept json
// @Produce json
// @Param passwords body service.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string "Password changed"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Current password is wrong"
// @Security BearerAuth
// @Router /profile/password [put]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), actor, &req, requestMeta(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

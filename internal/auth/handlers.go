package auth

import (
	"errors"
	"net/http"

	"newsroom-backend/internal/audit"
	"newsroom-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore is the narrow user lookup surface the login handler needs
type UserStore interface {
	GetByEmail(email string) (*models.User, error)
}

// Handler serves the login and logout endpoints
type Handler struct {
	service  *Service
	users    UserStore
	recorder audit.Recorder
	secure   bool
}

// NewHandler creates a new auth handler. secure controls the Secure flag
// on the token cookie and should be true in production.
func NewHandler(service *Service, users UserStore, recorder audit.Recorder, secure bool) *Handler {
	return &Handler{
		service:  service,
		users:    users,
		recorder: recorder,
		secure:   secure,
	}
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserIdentity `json:"user"`
}

// UserIdentity is the public identity subset returned on login
type UserIdentity struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Role     models.UserRole `json:"role"`
	TenantID string          `json:"tenant_id"`
}

// Login handles POST /api/v1/auth/login
// @Summary Authenticate a user
// @Description Verify email and password, issue a signed token as an HTTP-only cookie and in the body
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Successfully authenticated"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.service.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.SetCookie(CookieName, token, int(TokenTTL.Seconds()), "/", "", h.secure, true)

	h.recorder.Record(c.Request.Context(), audit.Entry{
		TenantID:     user.TenantID,
		ActorID:      &user.ID,
		ActorEmail:   user.Email,
		ActorRole:    string(user.Role),
		Action:       models.ActionUserLogin,
		ResourceType: "user",
		ResourceID:   user.ID.String(),
		Meta:         audit.RequestMeta{IPAddress: c.ClientIP(), UserAgent: c.Request.UserAgent()},
	})

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User: UserIdentity{
			ID:       user.ID.String(),
			Email:    user.Email,
			Name:     user.Name,
			Role:     user.Role,
			TenantID: user.TenantID.String(),
		},
	})
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out the current user
// @Description Clear the token cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", h.secure, true)

	if actor, ok := GetActor(c); ok {
		h.recorder.Record(c.Request.Context(), audit.Entry{
			TenantID:     actor.TenantID,
			ActorID:      &actor.ID,
			ActorEmail:   actor.Email,
			ActorRole:    string(actor.Role),
			Action:       models.ActionUserLogout,
			ResourceType: "user",
			ResourceID:   actor.ID.String(),
			Meta:         audit.RequestMeta{IPAddress: c.ClientIP(), UserAgent: c.Request.UserAgent()},
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

package handlers

import (
	"net/http"

	"newsroom-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles tenant bootstrap and settings endpoints
type TenantHandler struct {
	tenantService service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
	}
}

// CreateTenant creates a new tenant together with its first admin user
// @Summary Create tenant
// @Description Bootstrap a new tenant with its initial admin account
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.CreateTenantRequest true "Tenant bootstrap data"
// @Success 201 {object} service.TenantBootstrapResponse "Tenant created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 409 {object} ErrorResponse "Slug or admin email already taken"
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req service.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.tenantService.CreateTenant(c.Request.Context(), &req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetSettings returns the actor's tenant including its configuration
// @Summary Get tenant settings
// @Description Get the current tenant's profile and configuration
// @Tags tenants
// @Accept json
// @Produce json
// @Success 200 {object} service.TenantResponse "Tenant settings"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /tenant/settings [get]
func (h *TenantHandler) GetSettings(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	resp, err := h.tenantService.GetTenant(actor.TenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// UpdateSettings applies a partial update to the tenant configuration
// @Summary Update tenant settings
// @Description Update the current tenant's name, branding or system configuration
// @Tags tenants
// @Accept json
// @Produce json
// @Param settings body service.UpdateTenantSettingsRequest true "Settings update"
// @Success 200 {object} service.TenantResponse "Updated tenant"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /tenant/settings [put]
func (h *TenantHandler) UpdateSettings(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req service.UpdateTenantSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.tenantService.UpdateSettings(c.Request.Context(), actor, &req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

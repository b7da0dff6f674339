package handlers

import (
	"net/http"

	"newsroom-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard statistics endpoints
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats returns article totals, per-status counts and a creation trend
// @Summary Dashboard statistics
// @Description Get article aggregates for the selected window. Non-admin users only see their own articles.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param range query string false "Trend window (today, 7d, all)" default(today)
// @Success 200 {object} service.DashboardStatsResponse "Statistics"
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	req := service.DashboardStatsRequest{
		Range: c.DefaultQuery("range", "today"),
	}

	resp, err := h.dashboardService.GetStats(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

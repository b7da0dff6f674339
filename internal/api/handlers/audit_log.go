package handlers

import (
	"net/http"

	"newsroom-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuditLogHandler handles audit trail read endpoints
type AuditLogHandler struct {
	auditLogService service.AuditLogServiceInterface
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(auditLogService service.AuditLogServiceInterface) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogService: auditLogService,
	}
}

// GetAuditLogs returns a page of the tenant's audit trail
// @Summary List audit logs
// @Description Get a paginated list of audit entries, newest first, optionally filtered by action and resource type
// @Tags audit
// @Accept json
// @Produce json
// @Param action query string false "Action filter (e.g. USER_CREATE)"
// @Param resource_type query string false "Resource type filter (e.g. article)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} service.AuditLogListResponse "Audit entries"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /admin/audit-logs [get]
func (h *AuditLogHandler) GetAuditLogs(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	req := service.ListAuditLogsRequest{}
	req.Page, req.PageSize = parsePagination(c)
	if v := c.Query("action"); v != "" {
		req.Action = &v
	}
	if v := c.Query("resource_type"); v != "" {
		req.ResourceType = &v
	}

	resp, err := h.auditLogService.GetAuditLogs(actor.TenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

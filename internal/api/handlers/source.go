package handlers

import (
	"net/http"

	"newsroom-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SourceHandler handles news source endpoints
type SourceHandler struct {
	sourceService service.SourceServiceInterface
	syncService   service.SyncServiceInterface
}

// NewSourceHandler creates a new source handler
func NewSourceHandler(sourceService service.SourceServiceInterface, syncService service.SyncServiceInterface) *SourceHandler {
	return &SourceHandler{
		sourceService: sourceService,
		syncService:   syncService,
	}
}

// CreateSource registers a new news source
// @Summary Create news source
// @Description Register a new external content source for the current tenant
// @Tags sources
// @Accept json
// @Produce json
// @Param source body service.CreateSourceRequest true "Source data"
// @Success 201 {object} service.SourceResponse "Source created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Name already taken in the tenant"
// @Security BearerAuth
// @Router /sources [post]
func (h *SourceHandler) CreateSource(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req service.CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.sourceService.CreateSource(c.Request.Context(), actor, &req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

// GetSources returns a page of the tenant's news sources
// @Summary List news sources
// @Description Get a paginated list of sources, optionally filtered by type and update frequency
// @Tags sources
// @Accept json
// @Produce json
// @Param type query string false "Source type filter (NEWS, BLOG, SOCIAL)"
// @Param update_frequency query string false "Frequency filter (HOURLY, DAILY, WEEKLY, MANUAL)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} service.SourceListResponse "Sources"
// @Failure 400 {object} ErrorResponse "Invalid filter or pagination parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /sources [get]
func (h *SourceHandler) GetSources(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	req := service.ListSourcesRequest{}
	req.Page, req.PageSize = parsePagination(c)
	if v := c.Query("type"); v != "" {
		req.Type = &v
	}
	if v := c.Query("update_frequency"); v != "" {
		req.UpdateFrequency = &v
	}

	resp, err := h.sourceService.GetSources(actor.TenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSource returns a single news source by ID
// @Summary Get news source
// @Description Get a single source in the current tenant by ID
// @Tags sources
// @Accept json
// @Produce json
// @Param id path string true "Source ID"
// @Success 200 {object} service.SourceResponse "Source"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Source not found"
// @Security BearerAuth
// @Router /sources/{id} [get]
func (h *SourceHandler) GetSource(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.sourceService.GetSourceByID(actor.TenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// UpdateSource applies a partial update to a news source
// @Summary Update news source
// @Description Update a source's name, URL, type, category or update frequency
// @Tags sources
// @Accept json
// @Produce json
// @Param id path string true "Source ID"
// @Param source body service.UpdateSourceRequest true "Source update"
// @Success 200 {object} service.SourceResponse "Updated source"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Source not found"
// @Failure 409 {object} ErrorResponse "Name already taken in the tenant"
// @Security BearerAuth
// @Router /sources/{id} [put]
func (h *SourceHandler) UpdateSource(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.sourceService.UpdateSource(c.Request.Context(), actor, id, &req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// DeleteSource removes a news source
// @Summary Delete news source
// @Description Delete a source. Articles already ingested from it are kept.
// @Tags sources
// @Accept json
// @Produce json
// @Param id path string true "Source ID"
// @Success 200 {object} map[string]string "Source deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Source not found"
// @Security BearerAuth
// @Router /sources/{id} [delete]
func (h *SourceHandler) DeleteSource(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.sourceService.DeleteSource(c.Request.Context(), actor, id, requestMeta(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Source deleted successfully"})
}

// SyncSource fetches the source's feed and ingests new items
// @Summary Sync news source
// @Description Fetch the source's feed now and insert the items not seen before
// @Tags sources
// @Accept json
// @Produce json
// @Param id path string true "Source ID"
// @Success 200 {object} service.SyncResult "Sync outcome"
// @Failure 400 {object} ErrorResponse "Invalid ID or source is not syncable"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Source not found"
// @Failure 502 {object} ErrorResponse "Feed host unreachable"
// @Security BearerAuth
// @Router /sources/{id}/sync [post]
func (h *SourceHandler) SyncSource(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.syncService.SyncSource(c.Request.Context(), actor, id, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

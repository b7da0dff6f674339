package handlers

import (
	"net/http"

	"newsroom-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService service.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService service.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory creates a new category
// @Summary Create category
// @Description Create a new editorial category. The slug is derived from the name when omitted.
// @Tags categories
// @Accept json
// @Produce json
// @Param category body service.CreateCategoryRequest true "Category data"
// @Success 201 {object} service.CategoryResponse "Category created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Name or slug already taken in the tenant"
// @Security BearerAuth
// @Router /admin/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.categoryService.CreateCategory(c.Request.Context(), actor, &req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

// GetCategories returns a page of the tenant's categories
// @Summary List categories
// @Description Get a paginated list of categories in the current tenant
// @Tags categories
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} service.CategoryListResponse "Categories"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /admin/categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	resp, err := h.categoryService.GetCategories(actor.TenantID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCategory returns a single category by ID
// @Summary Get category
// @Description Get a single category in the current tenant by ID
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} service.CategoryResponse "Category"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /admin/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.categoryService.GetCategoryByID(actor.TenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// UpdateCategory applies a partial update to a category
// @Summary Update category
// @Description Update a category's name, slug or description
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body service.UpdateCategoryRequest true "Category update"
// @Success 200 {object} service.CategoryResponse "Updated category"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Name or slug already taken in the tenant"
// @Security BearerAuth
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.categoryService.UpdateCategory(c.Request.Context(), actor, id, &req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// DeleteCategory removes a category
// @Summary Delete category
// @Description Delete a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]string "Category deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), actor, id, requestMeta(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

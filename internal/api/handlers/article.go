package handlers

import (
	"net/http"

	"newsroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// CreateArticle creates a new article
// @Summary Create article
// @Description Create a new article. Published articles require a title and a link.
// @Tags articles
// @Accept json
// @Produce json
// @Param article body service.CreateArticleRequest true "Article data"
// @Success 201 {object} service.ArticleResponse "Article created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Link or slug already taken in the tenant"
// @Security BearerAuth
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req service.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.articleService.CreateArticle(c.Request.Context(), actor, &req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

// GetArticles returns a page of the tenant's articles
// @Summary List articles
// @Description Get a paginated list of articles with optional status, source, creator and search filters
// @Tags articles
// @Accept json
// @Produce json
// @Param status query string false "Status filter (DRAFT, PUBLISHED, ARCHIVED)"
// @Param source_id query string false "Source ID filter"
// @Param creator query string false "Creator user ID filter"
// @Param search query string false "Title substring search"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} service.ArticleListResponse "Articles"
// @Failure 400 {object} ErrorResponse "Invalid filter or pagination parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /articles [get]
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	req := service.ListArticlesRequest{}
	req.Page, req.PageSize = parsePagination(c)
	if v := c.Query("status"); v != "" {
		req.Status = &v
	}
	if v := c.Query("source_id"); v != "" {
		sourceID, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source ID"})
			return
		}
		req.SourceID = &sourceID
	}
	if v := c.Query("creator"); v != "" {
		creatorID, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creator ID"})
			return
		}
		req.Creator = &creatorID
	}
	if v := c.Query("search"); v != "" {
		req.Search = &v
	}

	resp, err := h.articleService.GetArticles(actor.TenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetArticle returns a single article by ID
// @Summary Get article
// @Description Get a single article in the current tenant by ID
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} service.ArticleResponse "Article"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Article not found"
// @Security BearerAuth
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.articleService.GetArticleByID(actor.TenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// UpdateArticle applies a partial update to an article
// @Summary Update article
// @Description Update an article. Locked articles can only be changed by admins.
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param article body service.UpdateArticleRequest true "Article update"
// @Success 200 {object} service.ArticleResponse "Updated article"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Article not found"
// @Failure 409 {object} ErrorResponse "Article is locked or slug taken"
// @Security BearerAuth
// @Router /articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.articleService.UpdateArticle(c.Request.Context(), actor, id, &req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// DeleteArticle removes an article
// @Summary Delete article
// @Description Delete an article. Locked articles can only be deleted by admins.
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]string "Article deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Article not found"
// @Failure 409 {object} ErrorResponse "Article is locked"
// @Security BearerAuth
// @Router /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), actor, id, requestMeta(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

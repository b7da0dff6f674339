package handlers

import (
	"net/http"

	"newsroom-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AIHandler handles editorial AI assistance endpoints
type AIHandler struct {
	aiService service.AIServiceInterface
}

// NewAIHandler creates a new AI handler
func NewAIHandler(aiService service.AIServiceInterface) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

// GenerateSeoMetadata generates SEO fields for article content
// @Summary Generate SEO metadata
// @Description Generate an SEO title, description and keywords for the given article content
// @Tags ai
// @Accept json
// @Produce json
// @Param article body service.GenerateSeoRequest true "Article title and content"
// @Success 200 {object} service.SeoMetadataResponse "Generated metadata"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Text generation service unavailable"
// @Security BearerAuth
// @Router /ai/seo [post]
func (h *AIHandler) GenerateSeoMetadata(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req service.GenerateSeoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.aiService.GenerateSeoMetadata(c.Request.Context(), actor, &req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// CheckGrammar proofreads the given text
// @Summary Check grammar
// @Description Proofread the given text and return a corrected version with the issues found
// @Tags ai
// @Accept json
// @Produce json
// @Param text body service.GrammarCheckRequest true "Text to proofread"
// @Success 200 {object} service.GrammarCheckResponse "Proofreading result"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Text generation service unavailable"
// @Security BearerAuth
// @Router /ai/grammar [post]
func (h *AIHandler) CheckGrammar(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req service.GrammarCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.aiService.CheckGrammar(c.Request.Context(), actor, &req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

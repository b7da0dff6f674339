package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"newsroom-backend/internal/ai"
	"newsroom-backend/internal/audit"
	"newsroom-backend/internal/auth"
	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

const seoSystemPrompt = `You are an SEO assistant for a newsroom CMS.
Given an article title and body, respond with a JSON object containing
exactly these keys: "seo_title" (max 60 chars), "seo_description"
(max 155 chars), "seo_keywords" (comma-separated, max 10 keywords).
Respond with JSON only, no prose.`

const grammarSystemPrompt = `You are a copy editor. Given article text,
respond with a JSON object containing exactly these keys:
"corrected_text" (the full text with grammar and spelling fixed) and
"issues" (an array of short strings, one per problem found).
Respond with JSON only, no prose.`

// AIService provides editorial AI assistance
type AIService struct {
	client    ai.ChatClient
	recorder  audit.Recorder
	validator *validator.Validate
}

// Ensure AIService implements AIServiceInterface
var _ AIServiceInterface = (*AIService)(nil)

// NewAIService creates a new AI assistance service
func NewAIService(client ai.ChatClient, recorder audit.Recorder, validator *validator.Validate) *AIService {
	return &AIService{
		client:    client,
		recorder:  recorder,
		validator: validator,
	}
}

// GenerateSeoRequest carries the article text to derive SEO metadata from
type GenerateSeoRequest struct {
	Title   string `json:"title" validate:"required,max=500"`
	Content string `json:"content" validate:"required"`
}

// SeoMetadataResponse represents generated SEO metadata
type SeoMetadataResponse struct {
	SeoTitle       string `json:"seo_title"`
	SeoDescription string `json:"seo_description"`
	SeoKeywords    string `json:"seo_keywords"`
}

// GrammarCheckRequest carries the text to proofread
type GrammarCheckRequest struct {
	Text string `json:"text" validate:"required"`
}

// GrammarCheckResponse represents a proofreading result
type GrammarCheckResponse struct {
	CorrectedText string   `json:"corrected_text"`
	Issues        []string `json:"issues"`
}

// GenerateSeoMetadata asks the model for SEO fields for an article
func (s *AIService) GenerateSeoMetadata(ctx context.Context, actor *auth.Actor, req *GenerateSeoRequest, meta audit.RequestMeta) (*SeoMetadataResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	prompt := fmt.Sprintf("Title: %s\n\nBody:\n%s", req.Title, req.Content)
	reply, err := s.client.Complete(ctx, seoSystemPrompt, prompt)
	if err != nil {
		return nil, apperrors.ErrAIUnavailable
	}

	var result SeoMetadataResponse
	if err := json.Unmarshal([]byte(extractJSON(reply)), &result); err != nil {
		return nil, apperrors.NewExternalError("ai", "malformed model response")
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionAISeoGenerate,
		ResourceType: "article",
		Meta:         meta,
		Metadata:     map[string]interface{}{"title": req.Title},
	})

	return &result, nil
}

// CheckGrammar asks the model to proofread article text
func (s *AIService) CheckGrammar(ctx context.Context, actor *auth.Actor, req *GrammarCheckRequest, meta audit.RequestMeta) (*GrammarCheckResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	reply, err := s.client.Complete(ctx, grammarSystemPrompt, req.Text)
	if err != nil {
		return nil, apperrors.ErrAIUnavailable
	}

	var result GrammarCheckResponse
	if err := json.Unmarshal([]byte(extractJSON(reply)), &result); err != nil {
		return nil, apperrors.NewExternalError("ai", "malformed model response")
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionAIGrammarCheck,
		ResourceType: "article",
		Meta:         meta,
		Metadata:     map[string]interface{}{"chars": len(req.Text)},
	})

	return &result, nil
}

// extractJSON strips markdown code fences some models wrap around JSON
func extractJSON(reply string) string {
	trimmed := strings.TrimSpace(reply)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	}
	return strings.TrimSpace(trimmed)
}

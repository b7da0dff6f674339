package service

import (
	"context"
	"fmt"
	"time"

	"newsroom-backend/internal/audit"
	"newsroom-backend/internal/auth"
	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/repository"
	"newsroom-backend/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// untitledDraft is the placeholder title for drafts created without one
const untitledDraft = "Untitled Draft"

// ArticleService handles business logic for articles
type ArticleService struct {
	repo      repository.ArticleRepositoryInterface
	recorder  audit.Recorder
	validator *validator.Validate
}

// Ensure ArticleService implements ArticleServiceInterface
var _ ArticleServiceInterface = (*ArticleService)(nil)

// NewArticleService creates a new article service
func NewArticleService(repo repository.ArticleRepositoryInterface, recorder audit.Recorder, validator *validator.Validate) *ArticleService {
	return &ArticleService{
		repo:      repo,
		recorder:  recorder,
		validator: validator,
	}
}

// CreateArticleRequest represents the data needed to author an article.
// The source reference is mandatory even for drafts.
type CreateArticleRequest struct {
	SourceID       uuid.UUID  `json:"source_id" validate:"required"`
	Title          string     `json:"title" validate:"max=500"`
	Link           string     `json:"link" validate:"omitempty,max=2048"`
	Description    string     `json:"description"`
	Content        string     `json:"content"`
	ImageURL       string     `json:"image_url" validate:"omitempty,url,max=2048"`
	Author         string     `json:"author" validate:"max=200"`
	Slug           *string    `json:"slug" validate:"omitempty,max=120"`
	Tags           []string   `json:"tags"`
	Status         *string    `json:"status" example:"DRAFT" default:"DRAFT"` // Optional: defaults to DRAFT. Valid values: DRAFT, PUBLISHED, ARCHIVED
	SeoTitle       string     `json:"seo_title" validate:"max=200"`
	SeoDescription string     `json:"seo_description" validate:"max=500"`
	SeoKeywords    string     `json:"seo_keywords" validate:"max=500"`
	OgImage        string     `json:"og_image" validate:"omitempty,url,max=2048"`
	PublishedAt    *time.Time `json:"published_at"`
}

// UpdateArticleRequest represents a partial update to an article
type UpdateArticleRequest struct {
	Title          *string    `json:"title" validate:"omitempty,max=500"`
	Description    *string    `json:"description"`
	Content        *string    `json:"content"`
	ImageURL       *string    `json:"image_url" validate:"omitempty,url,max=2048"`
	Author         *string    `json:"author" validate:"omitempty,max=200"`
	Slug           *string    `json:"slug" validate:"omitempty,max=120"`
	Tags           []string   `json:"tags"`
	Status         *string    `json:"status"`
	EditorialLock  *bool      `json:"editorial_lock"`
	SeoTitle       *string    `json:"seo_title" validate:"omitempty,max=200"`
	SeoDescription *string    `json:"seo_description" validate:"omitempty,max=500"`
	SeoKeywords    *string    `json:"seo_keywords" validate:"omitempty,max=500"`
	OgImage        *string    `json:"og_image" validate:"omitempty,url,max=2048"`
	PublishedAt    *time.Time `json:"published_at"`
}

// ListArticlesRequest carries listing filters and pagination
type ListArticlesRequest struct {
	Status   *string
	SourceID *uuid.UUID
	Creator  *uuid.UUID
	Search   *string
	Page     int
	PageSize int
}

// ArticleResponse represents the response data for an article
type ArticleResponse struct {
	ID             uuid.UUID            `json:"id"`
	TenantID       uuid.UUID            `json:"tenant_id"`
	SourceID       *uuid.UUID           `json:"source_id,omitempty"`
	CreatorID      *uuid.UUID           `json:"creator_id,omitempty"`
	Title          string               `json:"title"`
	Link           string               `json:"link"`
	Description    string               `json:"description"`
	Content        string               `json:"content"`
	ImageURL       string               `json:"image_url"`
	Author         string               `json:"author"`
	Slug           *string              `json:"slug,omitempty"`
	Tags           []string             `json:"tags"`
	Status         models.ArticleStatus `json:"status"`
	EditorialLock  bool                 `json:"editorial_lock"`
	SeoTitle       string               `json:"seo_title"`
	SeoDescription string               `json:"seo_description"`
	SeoKeywords    string               `json:"seo_keywords"`
	OgImage        string               `json:"og_image"`
	PublishedAt    *time.Time           `json:"published_at,omitempty"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

// ArticleListResponse represents a paginated list of articles
type ArticleListResponse struct {
	Data []ArticleResponse `json:"data"`
	Meta ListMeta          `json:"meta"`
}

// CreateArticle authors a new article. Drafts may omit title and link;
// any other status requires both.
func (s *ArticleService) CreateArticle(ctx context.Context, actor *auth.Actor, req *CreateArticleRequest, meta audit.RequestMeta) (*ArticleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.StatusDraft
	if req.Status != nil {
		status = models.ArticleStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}

	title := req.Title
	link := req.Link
	if status == models.StatusDraft {
		if title == "" {
			title = untitledDraft
		}
		if link == "" {
			link = "urn:draft:" + uuid.New().String()
		}
	} else if title == "" || link == "" {
		return nil, apperrors.ErrPublishedRequiresFields
	}

	if _, err := s.repo.GetByLink(actor.TenantID, link); err == nil {
		return nil, apperrors.ErrArticleLinkExists
	}

	slug, err := s.resolveSlug(actor.TenantID, req.Slug, nil)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		TenantID:       actor.TenantID,
		SourceID:       &req.SourceID,
		CreatorID:      &actor.ID,
		Title:          title,
		Link:           link,
		Description:    req.Description,
		Content:        req.Content,
		ImageURL:       req.ImageURL,
		Author:         req.Author,
		Slug:           slug,
		Tags:           datatypes.NewJSONSlice(req.Tags),
		Status:         status,
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
		SeoKeywords:    req.SeoKeywords,
		OgImage:        req.OgImage,
		PublishedAt:    req.PublishedAt,
	}
	if status == models.StatusPublished && article.PublishedAt == nil {
		now := time.Now().UTC()
		article.PublishedAt = &now
	}

	if err := s.repo.Create(article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionArticleCreate,
		ResourceType: "article",
		ResourceID:   article.ID.String(),
		Meta:         meta,
		NewValue:     article,
	})

	return articleToResponse(article), nil
}

// GetArticleByID retrieves an article by ID within a tenant
func (s *ArticleService) GetArticleByID(tenantID, id uuid.UUID) (*ArticleResponse, error) {
	article, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, apperrors.ErrArticleNotFound
	}
	return articleToResponse(article), nil
}

// GetArticles retrieves articles for a tenant with filtering and pagination
func (s *ArticleService) GetArticles(tenantID uuid.UUID, req *ListArticlesRequest) (*ArticleListResponse, error) {
	page, pageSize, err := normalizePagination(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	var filter repository.ArticleFilter
	if req.Status != nil {
		status := models.ArticleStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		filter.Status = &status
	}
	filter.SourceID = req.SourceID
	filter.CreatorID = req.Creator
	filter.Search = req.Search

	articles, total, err := s.repo.GetAll(tenantID, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get articles: %w", err)
	}

	responses := make([]ArticleResponse, len(articles))
	for i, article := range articles {
		responses[i] = *articleToResponse(&article)
	}

	return &ArticleListResponse{
		Data: responses,
		Meta: newListMeta(total, page, pageSize),
	}, nil
}

// UpdateArticle applies a partial update. Locked articles can only be
// modified by admins.
func (s *ArticleService) UpdateArticle(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateArticleRequest, meta audit.RequestMeta) (*ArticleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	article, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, apperrors.ErrArticleNotFound
	}

	if article.EditorialLock && actor.Role != models.RoleAdmin {
		return nil, apperrors.ErrArticleLocked
	}

	old := *article
	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Description != nil {
		article.Description = *req.Description
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.ImageURL != nil {
		article.ImageURL = *req.ImageURL
	}
	if req.Author != nil {
		article.Author = *req.Author
	}
	if req.Slug != nil {
		slug, err := s.resolveSlug(actor.TenantID, req.Slug, &article.ID)
		if err != nil {
			return nil, err
		}
		article.Slug = slug
	}
	if req.Tags != nil {
		article.Tags = datatypes.NewJSONSlice(req.Tags)
	}
	if req.EditorialLock != nil {
		article.EditorialLock = *req.EditorialLock
	}
	if req.SeoTitle != nil {
		article.SeoTitle = *req.SeoTitle
	}
	if req.SeoDescription != nil {
		article.SeoDescription = *req.SeoDescription
	}
	if req.SeoKeywords != nil {
		article.SeoKeywords = *req.SeoKeywords
	}
	if req.OgImage != nil {
		article.OgImage = *req.OgImage
	}
	if req.PublishedAt != nil {
		article.PublishedAt = req.PublishedAt
	}
	if req.Status != nil {
		status := models.ArticleStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		if status != models.StatusDraft && (article.Title == "" || article.Link == "") {
			return nil, apperrors.ErrPublishedRequiresFields
		}
		if status == models.StatusPublished && article.PublishedAt == nil {
			now := time.Now().UTC()
			article.PublishedAt = &now
		}
		article.Status = status
	}

	if err := s.repo.Update(article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionArticleUpdate,
		ResourceType: "article",
		ResourceID:   article.ID.String(),
		Meta:         meta,
		OldValue:     &old,
		NewValue:     article,
	})

	return articleToResponse(article), nil
}

// DeleteArticle deletes an article. Locked articles can only be deleted
// by admins.
func (s *ArticleService) DeleteArticle(ctx context.Context, actor *auth.Actor, id uuid.UUID, meta audit.RequestMeta) error {
	article, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return apperrors.ErrArticleNotFound
	}

	if article.EditorialLock && actor.Role != models.RoleAdmin {
		return apperrors.ErrArticleLocked
	}

	if err := s.repo.Delete(actor.TenantID, id); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionArticleDelete,
		ResourceType: "article",
		ResourceID:   id.String(),
		Meta:         meta,
		OldValue:     article,
	})

	return nil
}

// resolveSlug normalizes a supplied slug and enforces per-tenant
// uniqueness. An omitted slug stays unset; selfID excludes the article
// being updated from the uniqueness check.
func (s *ArticleService) resolveSlug(tenantID uuid.UUID, explicit *string, selfID *uuid.UUID) (*string, error) {
	if explicit == nil || *explicit == "" {
		return nil, nil
	}

	slug := util.Slugify(*explicit)
	if slug == "" {
		return nil, apperrors.NewValidationError("slug", "must contain at least one letter or digit")
	}

	existing, err := s.repo.GetBySlug(tenantID, slug)
	if err == nil && (selfID == nil || existing.ID != *selfID) {
		return nil, apperrors.ErrArticleSlugExists
	}
	return &slug, nil
}

// articleToResponse converts an Article model to API response
func articleToResponse(article *models.Article) *ArticleResponse {
	return &ArticleResponse{
		ID:             article.ID,
		TenantID:       article.TenantID,
		SourceID:       article.SourceID,
		CreatorID:      article.CreatorID,
		Title:          article.Title,
		Link:           article.Link,
		Description:    article.Description,
		Content:        article.Content,
		ImageURL:       article.ImageURL,
		Author:         article.Author,
		Slug:           article.Slug,
		Tags:           article.Tags,
		Status:         article.Status,
		EditorialLock:  article.EditorialLock,
		SeoTitle:       article.SeoTitle,
		SeoDescription: article.SeoDescription,
		SeoKeywords:    article.SeoKeywords,
		OgImage:        article.OgImage,
		PublishedAt:    article.PublishedAt,
		CreatedAt:      article.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      article.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

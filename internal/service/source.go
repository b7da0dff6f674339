package service

import (
	"context"
	"fmt"

	"newsroom-backend/internal/audit"
	"newsroom-backend/internal/auth"
	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SourceService handles business logic for news sources
type SourceService struct {
	repo      repository.SourceRepositoryInterface
	recorder  audit.Recorder
	validator *validator.Validate
}

// Ensure SourceService implements SourceServiceInterface
var _ SourceServiceInterface = (*SourceService)(nil)

// NewSourceService creates a new news source service
func NewSourceService(repo repository.SourceRepositoryInterface, recorder audit.Recorder, validator *validator.Validate) *SourceService {
	return &SourceService{
		repo:      repo,
		recorder:  recorder,
		validator: validator,
	}
}

// CreateSourceRequest represents the data needed to register a news source
type CreateSourceRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=200"`
	BaseURL         string  `json:"base_url" validate:"required,url,max=2048"`
	Type            *string `json:"type" example:"NEWS" default:"NEWS"` // Optional: defaults to NEWS. Valid values: NEWS, BLOG, SOCIAL
	Category        string  `json:"category" validate:"max=100"`
	UpdateFrequency *string `json:"update_frequency" example:"DAILY" default:"DAILY"` // Optional: defaults to DAILY. Valid values: HOURLY, DAILY, WEEKLY, MANUAL
}

// UpdateSourceRequest represents a partial update to a news source
type UpdateSourceRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=200"`
	BaseURL         *string `json:"base_url" validate:"omitempty,url,max=2048"`
	Type            *string `json:"type"`
	Category        *string `json:"category" validate:"omitempty,max=100"`
	UpdateFrequency *string `json:"update_frequency"`
}

// ListSourcesRequest carries listing filters and pagination
type ListSourcesRequest struct {
	Type            *string
	UpdateFrequency *string
	Page            int
	PageSize        int
}

// SourceResponse represents the response data for a news source
type SourceResponse struct {
	ID              uuid.UUID              `json:"id"`
	TenantID        uuid.UUID              `json:"tenant_id"`
	Name            string                 `json:"name"`
	BaseURL         string                 `json:"base_url"`
	Type            models.SourceType      `json:"type"`
	Category        string                 `json:"category"`
	UpdateFrequency models.UpdateFrequency `json:"update_frequency"`
	LastFetchedAt   *string                `json:"last_fetched_at,omitempty"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

// SourceListResponse represents a paginated list of news sources
type SourceListResponse struct {
	Data []SourceResponse `json:"data"`
	Meta ListMeta         `json:"meta"`
}

// CreateSource registers a new feed for the actor's tenant
func (s *SourceService) CreateSource(ctx context.Context, actor *auth.Actor, req *CreateSourceRequest, meta audit.RequestMeta) (*SourceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sourceType := models.SourceTypeNews
	if req.Type != nil {
		sourceType = models.SourceType(*req.Type)
		if !sourceType.IsValid() {
			return nil, apperrors.NewValidationError("type", "must be one of NEWS, BLOG, SOCIAL")
		}
	}

	frequency := models.FrequencyDaily
	if req.UpdateFrequency != nil {
		frequency = models.UpdateFrequency(*req.UpdateFrequency)
		if !frequency.IsValid() {
			return nil, apperrors.NewValidationError("update_frequency", "must be one of HOURLY, DAILY, WEEKLY, MANUAL")
		}
	}

	if _, err := s.repo.GetByName(actor.TenantID, req.Name); err == nil {
		return nil, apperrors.ErrSourceExists
	}

	source := &models.NewsSource{
		TenantID:        actor.TenantID,
		Name:            req.Name,
		BaseURL:         req.BaseURL,
		Type:            sourceType,
		Category:        req.Category,
		UpdateFrequency: frequency,
	}

	if err := s.repo.Create(source); err != nil {
		return nil, fmt.Errorf("failed to create source: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionSourceCreate,
		ResourceType: "news_source",
		ResourceID:   source.ID.String(),
		Meta:         meta,
		NewValue:     source,
	})

	return sourceToResponse(source), nil
}

// GetSourceByID retrieves a news source by ID within a tenant
func (s *SourceService) GetSourceByID(tenantID, id uuid.UUID) (*SourceResponse, error) {
	source, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, apperrors.ErrSourceNotFound
	}
	return sourceToResponse(source), nil
}

// GetSources retrieves news sources for a tenant with filtering and pagination
func (s *SourceService) GetSources(tenantID uuid.UUID, req *ListSourcesRequest) (*SourceListResponse, error) {
	page, pageSize, err := normalizePagination(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	var filter repository.SourceFilter
	if req.Type != nil {
		sourceType := models.SourceType(*req.Type)
		if !sourceType.IsValid() {
			return nil, apperrors.NewValidationError("type", "must be one of NEWS, BLOG, SOCIAL")
		}
		filter.Type = &sourceType
	}
	if req.UpdateFrequency != nil {
		frequency := models.UpdateFrequency(*req.UpdateFrequency)
		if !frequency.IsValid() {
			return nil, apperrors.NewValidationError("update_frequency", "must be one of HOURLY, DAILY, WEEKLY, MANUAL")
		}
		filter.UpdateFrequency = &frequency
	}

	sources, total, err := s.repo.GetAll(tenantID, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get sources: %w", err)
	}

	responses := make([]SourceResponse, len(sources))
	for i, source := range sources {
		responses[i] = *sourceToResponse(&source)
	}

	return &SourceListResponse{
		Data: responses,
		Meta: newListMeta(total, page, pageSize),
	}, nil
}

// UpdateSource applies a partial update to a news source
func (s *SourceService) UpdateSource(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateSourceRequest, meta audit.RequestMeta) (*SourceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	source, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, apperrors.ErrSourceNotFound
	}

	old := *source
	if req.Name != nil && *req.Name != source.Name {
		if _, err := s.repo.GetByName(actor.TenantID, *req.Name); err == nil {
			return nil, apperrors.ErrSourceExists
		}
		source.Name = *req.Name
	}
	if req.BaseURL != nil {
		source.BaseURL = *req.BaseURL
	}
	if req.Type != nil {
		sourceType := models.SourceType(*req.Type)
		if !sourceType.IsValid() {
			return nil, apperrors.NewValidationError("type", "must be one of NEWS, BLOG, SOCIAL")
		}
		source.Type = sourceType
	}
	if req.Category != nil {
		source.Category = *req.Category
	}
	if req.UpdateFrequency != nil {
		frequency := models.UpdateFrequency(*req.UpdateFrequency)
		if !frequency.IsValid() {
			return nil, apperrors.NewValidationError("update_frequency", "must be one of HOURLY, DAILY, WEEKLY, MANUAL")
		}
		source.UpdateFrequency = frequency
	}

	if err := s.repo.Update(source); err != nil {
		return nil, fmt.Errorf("failed to update source: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionSourceUpdate,
		ResourceType: "news_source",
		ResourceID:   source.ID.String(),
		Meta:         meta,
		OldValue:     &old,
		NewValue:     source,
	})

	return sourceToResponse(source), nil
}

// DeleteSource deletes a news source and, through the schema cascade,
// its ingested articles
func (s *SourceService) DeleteSource(ctx context.Context, actor *auth.Actor, id uuid.UUID, meta audit.RequestMeta) error {
	source, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return apperrors.ErrSourceNotFound
	}

	if err := s.repo.Delete(actor.TenantID, id); err != nil {
		return fmt.Errorf("failed to delete source: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionSourceDelete,
		ResourceType: "news_source",
		ResourceID:   id.String(),
		Meta:         meta,
		OldValue:     source,
	})

	return nil
}

// sourceToResponse converts a NewsSource model to API response
func sourceToResponse(source *models.NewsSource) *SourceResponse {
	resp := &SourceResponse{
		ID:              source.ID,
		TenantID:        source.TenantID,
		Name:            source.Name,
		BaseURL:         source.BaseURL,
		Type:            source.Type,
		Category:        source.Category,
		UpdateFrequency: source.UpdateFrequency,
		CreatedAt:       source.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       source.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if source.LastFetchedAt != nil {
		fetched := source.LastFetchedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.LastFetchedAt = &fetched
	}
	return resp
}

package service

import (
	"context"
	"fmt"

	"newsroom-backend/internal/audit"
	"newsroom-backend/internal/auth"
	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/repository"
	"newsroom-backend/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CategoryService handles business logic for categories
type CategoryService struct {
	repo      repository.CategoryRepositoryInterface
	recorder  audit.Recorder
	validator *validator.Validate
}

// Ensure CategoryService implements CategoryServiceInterface
var _ CategoryServiceInterface = (*CategoryService)(nil)

// NewCategoryService creates a new category service
func NewCategoryService(repo repository.CategoryRepositoryInterface, recorder audit.Recorder, validator *validator.Validate) *CategoryService {
	return &CategoryService{
		repo:      repo,
		recorder:  recorder,
		validator: validator,
	}
}

// CreateCategoryRequest represents the data needed to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Slug        string `json:"slug" validate:"omitempty,max=120"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCategoryRequest represents a partial update to a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Slug        *string `json:"slug" validate:"omitempty,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// CategoryResponse represents the response data for a category
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// CategoryListResponse represents a paginated list of categories
type CategoryListResponse struct {
	Data []CategoryResponse `json:"data"`
	Meta ListMeta           `json:"meta"`
}

// CreateCategory creates a new category in the actor's tenant
func (s *CategoryService) CreateCategory(ctx context.Context, actor *auth.Actor, req *CreateCategoryRequest, meta audit.RequestMeta) (*CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	slug := util.Slugify(req.Slug)
	if slug == "" {
		slug = util.Slugify(req.Name)
	}
	if slug == "" {
		return nil, apperrors.NewValidationError("slug", "must contain at least one letter or digit")
	}

	if _, err := s.repo.GetByName(actor.TenantID, req.Name); err == nil {
		return nil, apperrors.ErrCategoryExists
	}
	if _, err := s.repo.GetBySlug(actor.TenantID, slug); err == nil {
		return nil, apperrors.ErrCategorySlugExists
	}

	category := &models.Category{
		TenantID:    actor.TenantID,
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
	}

	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionCategoryCreate,
		ResourceType: "category",
		ResourceID:   category.ID.String(),
		Meta:         meta,
		NewValue:     category,
	})

	return categoryToResponse(category), nil
}

// GetCategoryByID retrieves a category by ID within a tenant
func (s *CategoryService) GetCategoryByID(tenantID, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	return categoryToResponse(category), nil
}

// GetCategories retrieves categories for a tenant with pagination
func (s *CategoryService) GetCategories(tenantID uuid.UUID, page, pageSize int) (*CategoryListResponse, error) {
	page, pageSize, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	categories, total, err := s.repo.GetAll(tenantID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *categoryToResponse(&category)
	}

	return &CategoryListResponse{
		Data: responses,
		Meta: newListMeta(total, page, pageSize),
	}, nil
}

// UpdateCategory applies a partial update to a category
func (s *CategoryService) UpdateCategory(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateCategoryRequest, meta audit.RequestMeta) (*CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, apperrors.ErrCategoryNotFound
	}

	old := *category
	if req.Name != nil && *req.Name != category.Name {
		if _, err := s.repo.GetByName(actor.TenantID, *req.Name); err == nil {
			return nil, apperrors.ErrCategoryExists
		}
		category.Name = *req.Name
	}
	if req.Slug != nil {
		slug := util.Slugify(*req.Slug)
		if slug == "" {
			return nil, apperrors.NewValidationError("slug", "must contain at least one letter or digit")
		}
		if slug != category.Slug {
			if _, err := s.repo.GetBySlug(actor.TenantID, slug); err == nil {
				return nil, apperrors.ErrCategorySlugExists
			}
			category.Slug = slug
		}
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionCategoryUpdate,
		ResourceType: "category",
		ResourceID:   category.ID.String(),
		Meta:         meta,
		OldValue:     &old,
		NewValue:     category,
	})

	return categoryToResponse(category), nil
}

// DeleteCategory deletes a category
func (s *CategoryService) DeleteCategory(ctx context.Context, actor *auth.Actor, id uuid.UUID, meta audit.RequestMeta) error {
	category, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return apperrors.ErrCategoryNotFound
	}

	if err := s.repo.Delete(actor.TenantID, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionCategoryDelete,
		ResourceType: "category",
		ResourceID:   id.String(),
		Meta:         meta,
		OldValue:     category,
	})

	return nil
}

// categoryToResponse converts a Category model to API response
func categoryToResponse(category *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          category.ID,
		TenantID:    category.TenantID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		CreatedAt:   category.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   category.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"newsroom-backend/internal/audit"
	"newsroom-backend/internal/auth"
	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/repository"
	"newsroom-backend/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TenantService handles tenant bootstrap and settings
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	users     repository.UserRepositoryInterface
	recorder  audit.Recorder
	validator *validator.Validate
}

// Ensure TenantService implements TenantServiceInterface
var _ TenantServiceInterface = (*TenantService)(nil)

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, users repository.UserRepositoryInterface, recorder audit.Recorder, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		users:     users,
		recorder:  recorder,
		validator: validator,
	}
}

// CreateTenantRequest represents the data needed to bootstrap a tenant
type CreateTenantRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Slug          string `json:"slug" validate:"omitempty,max=120"`
	AdminEmail    string `json:"admin_email" validate:"required,email,max=255"`
	AdminName     string `json:"admin_name" validate:"required,min=1,max=200"`
	AdminPassword string `json:"admin_password" validate:"required,min=8,max=72"`
}

// UpdateTenantSettingsRequest represents a partial settings update
type UpdateTenantSettingsRequest struct {
	Name           *string         `json:"name" validate:"omitempty,min=1,max=200"`
	BrandingConfig json.RawMessage `json:"branding_config" swaggertype:"object"`
	SystemConfig   json.RawMessage `json:"system_config" swaggertype:"object"`
}

// TenantResponse represents the response data for a tenant
type TenantResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	BrandingConfig json.RawMessage `json:"branding_config,omitempty" swaggertype:"object"`
	SystemConfig   json.RawMessage `json:"system_config,omitempty" swaggertype:"object"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// TenantBootstrapResponse is returned when a tenant and its first admin are created
type TenantBootstrapResponse struct {
	Tenant TenantResponse `json:"tenant"`
	Admin  UserResponse   `json:"admin"`
}

// CreateTenant creates a tenant together with its first admin user
func (s *TenantService) CreateTenant(ctx context.Context, req *CreateTenantRequest, meta audit.RequestMeta) (*TenantBootstrapResponse, error) {
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

	if _, err := s.repo.GetBySlug(slug); err == nil {
		return nil, apperrors.ErrTenantSlugExists
	}
	if _, err := s.users.GetByEmail(req.AdminEmail); err == nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tenant := &models.Tenant{
		Name: req.Name,
		Slug: slug,
	}
	admin := &models.User{
		Email:        req.AdminEmail,
		Name:         req.AdminName,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := s.repo.CreateWithAdmin(tenant, admin); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     tenant.ID,
		ActorID:      &admin.ID,
		ActorEmail:   admin.Email,
		ActorRole:    string(admin.Role),
		Action:       models.ActionTenantCreate,
		ResourceType: "tenant",
		ResourceID:   tenant.ID.String(),
		Meta:         meta,
		NewValue:     tenant,
	})
	s.recorder.Record(ctx, audit.Entry{
		TenantID:     tenant.ID,
		ActorID:      &admin.ID,
		ActorEmail:   admin.Email,
		ActorRole:    string(admin.Role),
		Action:       models.ActionUserRegister,
		ResourceType: "user",
		ResourceID:   admin.ID.String(),
		Meta:         meta,
		NewValue:     userToResponse(admin),
	})

	return &TenantBootstrapResponse{
		Tenant: *s.toResponse(tenant),
		Admin:  *userToResponse(admin),
	}, nil
}

// GetTenant retrieves a tenant by ID
func (s *TenantService) GetTenant(tenantID uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(tenantID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return s.toResponse(tenant), nil
}

// UpdateSettings applies a partial update to the actor's tenant
func (s *TenantService) UpdateSettings(ctx context.Context, actor *auth.Actor, req *UpdateTenantSettingsRequest, meta audit.RequestMeta) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tenant, err := s.repo.GetByID(actor.TenantID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	old := *tenant
	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.BrandingConfig != nil {
		tenant.BrandingConfig = req.BrandingConfig
	}
	if req.SystemConfig != nil {
		tenant.SystemConfig = req.SystemConfig
	}

	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     tenant.ID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionTenantUpdate,
		ResourceType: "tenant",
		ResourceID:   tenant.ID.String(),
		Meta:         meta,
		OldValue:     &old,
		NewValue:     tenant,
	})

	return s.toResponse(tenant), nil
}

// toResponse converts a Tenant model to API response
func (s *TenantService) toResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:             tenant.ID,
		Name:           tenant.Name,
		Slug:           tenant.Slug,
		BrandingConfig: tenant.BrandingConfig,
		SystemConfig:   tenant.SystemConfig,
		CreatedAt:      tenant.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      tenant.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

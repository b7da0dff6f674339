package service

import (
	"context"

	"newsroom-backend/internal/audit"
	"newsroom-backend/internal/auth"
	"newsroom-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	CreateTenant(ctx context.Context, req *CreateTenantRequest, meta audit.RequestMeta) (*TenantBootstrapResponse, error)
	GetTenant(tenantID uuid.UUID) (*TenantResponse, error)
	UpdateSettings(ctx context.Context, actor *auth.Actor, req *UpdateTenantSettingsRequest, meta audit.RequestMeta) (*TenantResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(ctx context.Context, actor *auth.Actor, req *CreateUserRequest, meta audit.RequestMeta) (*UserResponse, error)
	GetUserByID(tenantID, id uuid.UUID) (*UserResponse, error)
	GetUsers(tenantID uuid.UUID, page, pageSize int) (*UserListResponse, error)
	UpdateUser(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateUserRequest, meta audit.RequestMeta) (*UserResponse, error)
	DeleteUser(ctx context.Context, actor *auth.Actor, id uuid.UUID, meta audit.RequestMeta) error
	GetProfile(actor *auth.Actor) (*UserResponse, error)
	UpdateProfile(ctx context.Context, actor *auth.Actor, req *UpdateProfileRequest, meta audit.RequestMeta) (*UserResponse, error)
	ChangePassword(ctx context.Context, actor *auth.Actor, req *ChangePasswordRequest, meta audit.RequestMeta) error
}

// SourceServiceInterface defines the interface for news source service
type SourceServiceInterface interface {
	CreateSource(ctx context.Context, actor *auth.Actor, req *CreateSourceRequest, meta audit.RequestMeta) (*SourceResponse, error)
	GetSourceByID(tenantID, id uuid.UUID) (*SourceResponse, error)
	GetSources(tenantID uuid.UUID, req *ListSourcesRequest) (*SourceListResponse, error)
	UpdateSource(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateSourceRequest, meta audit.RequestMeta) (*SourceResponse, error)
	DeleteSource(ctx context.Context, actor *auth.Actor, id uuid.UUID, meta audit.RequestMeta) error
}

// SyncServiceInterface defines the interface for the feed ingestion service
type SyncServiceInterface interface {
	SyncSource(ctx context.Context, actor *auth.Actor, sourceID uuid.UUID, meta audit.RequestMeta) (*SyncResult, error)
	SyncDueSources(ctx context.Context, freq models.UpdateFrequency) error
}

// ArticleServiceInterface defines the interface for article service
type ArticleServiceInterface interface {
	CreateArticle(ctx context.Context, actor *auth.Actor, req *CreateArticleRequest, meta audit.RequestMeta) (*ArticleResponse, error)
	GetArticleByID(tenantID, id uuid.UUID) (*ArticleResponse, error)
	GetArticles(tenantID uuid.UUID, req *ListArticlesRequest) (*ArticleListResponse, error)
	UpdateArticle(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateArticleRequest, meta audit.RequestMeta) (*ArticleResponse, error)
	DeleteArticle(ctx context.Context, actor *auth.Actor, id uuid.UUID, meta audit.RequestMeta) error
}

// CategoryServiceInterface defines the interface for category service
type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, actor *auth.Actor, req *CreateCategoryRequest, meta audit.RequestMeta) (*CategoryResponse, error)
	GetCategoryByID(tenantID, id uuid.UUID) (*CategoryResponse, error)
	GetCategories(tenantID uuid.UUID, page, pageSize int) (*CategoryListResponse, error)
	UpdateCategory(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateCategoryRequest, meta audit.RequestMeta) (*CategoryResponse, error)
	DeleteCategory(ctx context.Context, actor *auth.Actor, id uuid.UUID, meta audit.RequestMeta) error
}

// DashboardServiceInterface defines the interface for dashboard statistics
type DashboardServiceInterface interface {
	GetStats(actor *auth.Actor, req *DashboardStatsRequest) (*DashboardStatsResponse, error)
}

// AuditLogServiceInterface defines the interface for audit trail reads
type AuditLogServiceInterface interface {
	GetAuditLogs(tenantID uuid.UUID, req *ListAuditLogsRequest) (*AuditLogListResponse, error)
}

// AIServiceInterface defines the interface for editorial AI assistance
type AIServiceInterface interface {
	GenerateSeoMetadata(ctx context.Context, actor *auth.Actor, req *GenerateSeoRequest, meta audit.RequestMeta) (*SeoMetadataResponse, error)
	CheckGrammar(ctx context.Context, actor *auth.Actor, req *GrammarCheckRequest, meta audit.RequestMeta) (*GrammarCheckResponse, error)
}

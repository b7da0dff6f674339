package repository

import (
	"time"

	"newsroom-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ArticleFilter is the typed query filter for article listings.
// Nil fields are not applied.
type ArticleFilter struct {
	Status    *models.ArticleStatus
	SourceID  *uuid.UUID
	CreatorID *uuid.UUID
	Search    *string
}

// SourceFilter is the typed query filter for source listings
type SourceFilter struct {
	Type            *models.SourceType
	UpdateFrequency *models.UpdateFrequency
}

// AuditLogFilter is the typed query filter for audit log listings
type AuditLogFilter struct {
	Action       *models.AuditAction
	ResourceType *string
}

// StatsFilter scopes dashboard aggregates. CreatorID is set for
// non-admin actors so they only see their own articles.
type StatsFilter struct {
	CreatorID *uuid.UUID
	Since     *time.Time
}

// BucketCount is one aggregated trend slot as returned by the store
type BucketCount struct {
	Bucket string
	Count  int64
}

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetBySlug(slug string) (*models.Tenant, error)
	Update(tenant *models.Tenant) error
	CreateWithAdmin(tenant *models.Tenant, admin *models.User) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(tenantID, id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(tenantID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(tenantID, id uuid.UUID) error
}

// SourceRepositoryInterface defines the interface for news source repository operations
type SourceRepositoryInterface interface {
	Create(source *models.NewsSource) error
	GetByID(tenantID, id uuid.UUID) (*models.NewsSource, error)
	GetByName(tenantID uuid.UUID, name string) (*models.NewsSource, error)
	GetAll(tenantID uuid.UUID, filter SourceFilter, limit, offset int) ([]models.NewsSource, int64, error)
	GetSyncableByFrequency(freq models.UpdateFrequency) ([]models.NewsSource, error)
	Update(source *models.NewsSource) error
	UpdateLastFetchedAt(tenantID, id uuid.UUID, fetchedAt time.Time) error
	Delete(tenantID, id uuid.UUID) error
}

// ArticleRepositoryInterface defines the interface for article repository operations
type ArticleRepositoryInterface interface {
	Create(article *models.Article) error
	GetByID(tenantID, id uuid.UUID) (*models.Article, error)
	GetByLink(tenantID uuid.UUID, link string) (*models.Article, error)
	GetBySlug(tenantID uuid.UUID, slug string) (*models.Article, error)
	GetAll(tenantID uuid.UUID, filter ArticleFilter, limit, offset int) ([]models.Article, int64, error)
	Update(article *models.Article) error
	Delete(tenantID, id uuid.UUID) error

	CountTotal(tenantID uuid.UUID, filter StatsFilter) (int64, error)
	CountByStatus(tenantID uuid.UUID, filter StatsFilter) (map[models.ArticleStatus]int64, error)
	CountByHour(tenantID uuid.UUID, filter StatsFilter) ([]BucketCount, error)
	CountByDay(tenantID uuid.UUID, filter StatsFilter) ([]BucketCount, error)
	EarliestCreatedAt(tenantID uuid.UUID, filter StatsFilter) (*time.Time, error)
}

// ArticleInserter performs the skip-on-conflict insert at the heart of
// feed ingestion. Both implementations produce the same final row set and
// report the count of rows that did not already exist. The right one is
// selected once at startup from the store's capabilities.
type ArticleInserter interface {
	InsertSkipConflicts(articles []models.Article) (int64, error)
}

// CategoryRepositoryInterface defines the interface for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(tenantID, id uuid.UUID) (*models.Category, error)
	GetByName(tenantID uuid.UUID, name string) (*models.Category, error)
	GetBySlug(tenantID uuid.UUID, slug string) (*models.Category, error)
	GetAll(tenantID uuid.UUID, limit, offset int) ([]models.Category, int64, error)
	Update(category *models.Category) error
	Delete(tenantID, id uuid.UUID) error
}

// AuditLogRepositoryInterface defines the interface for audit log reads.
// Writes go through the audit recorder; rows are never updated or deleted.
type AuditLogRepositoryInterface interface {
	GetAll(tenantID uuid.UUID, filter AuditLogFilter, limit, offset int) ([]models.AuditLog, int64, error)
}

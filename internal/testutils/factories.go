package testutils

import (
	"fmt"
	"time"

	"newsroom-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Newsroom",
		Slug: "test-newsroom-" + id.String()[:8],
	}
}

// WithName sets a custom name and matching slug for the tenant
func (f *TenantFactory) WithName(name, slug string) *models.Tenant {
	tenant := f.Create()
	tenant.Name = name
	tenant.Slug = slug
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: uuid.New(),
		// Unique email per instance to satisfy the global unique index
		Email:        fmt.Sprintf("editor-%s@test.com", id.String()[:8]),
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Name:         "Jane Editor",
		Role:         models.RoleEditor,
	}
}

// WithTenant sets the tenant ID for the user
func (f *UserFactory) WithTenant(tenantID uuid.UUID) *models.User {
	user := f.Create()
	user.TenantID = tenantID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(tenantID uuid.UUID, role models.UserRole) *models.User {
	user := f.Create()
	user.TenantID = tenantID
	user.Role = role
	return user
}

// SourceFactory provides methods to create test NewsSource data
type SourceFactory struct{}

// NewSourceFactory creates a new SourceFactory
func NewSourceFactory() *SourceFactory {
	return &SourceFactory{}
}

// Create creates a test NewsSource with default values
func (f *SourceFactory) Create() *models.NewsSource {
	id := uuid.New()
	return &models.NewsSource{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:        uuid.New(),
		Name:            "Test Feed " + id.String()[:8],
		BaseURL:         "https://feeds.test.com/" + id.String()[:8] + "/rss.xml",
		Type:            models.SourceTypeNews,
		Category:        "technology",
		UpdateFrequency: models.FrequencyHourly,
	}
}

// WithTenant sets the tenant ID for the source
func (f *SourceFactory) WithTenant(tenantID uuid.UUID) *models.NewsSource {
	source := f.Create()
	source.TenantID = tenantID
	return source
}

// WithType sets the source type
func (f *SourceFactory) WithType(tenantID uuid.UUID, sourceType models.SourceType) *models.NewsSource {
	source := f.Create()
	source.TenantID = tenantID
	source.Type = sourceType
	return source
}

// ArticleFactory provides methods to create test Article data
type ArticleFactory struct{}

// NewArticleFactory creates a new ArticleFactory
func NewArticleFactory() *ArticleFactory {
	return &ArticleFactory{}
}

// Create creates a test Article with default values
func (f *ArticleFactory) Create() *models.Article {
	id := uuid.New()
	return &models.Article{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    uuid.New(),
		Title:       "Test Article " + id.String()[:8],
		Link:        "https://news.test.com/articles/" + id.String(),
		Description: "A test article",
		Status:      models.StatusDraft,
	}
}

// WithTenantAndSource sets the tenant and source IDs for the article
func (f *ArticleFactory) WithTenantAndSource(tenantID, sourceID uuid.UUID) *models.Article {
	article := f.Create()
	article.TenantID = tenantID
	article.SourceID = &sourceID
	return article
}

// WithLink sets a custom canonical link for the article
func (f *ArticleFactory) WithLink(tenantID, sourceID uuid.UUID, link string) *models.Article {
	article := f.WithTenantAndSource(tenantID, sourceID)
	article.Link = link
	return article
}

// CategoryFactory provides methods to create test Category data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a test Category with default values
func (f *CategoryFactory) Create() *models.Category {
	id := uuid.New()
	return &models.Category{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    uuid.New(),
		Name:        "Category " + id.String()[:8],
		Slug:        "category-" + id.String()[:8],
		Description: "A test category",
	}
}

// WithTenant sets the tenant ID for the category
func (f *CategoryFactory) WithTenant(tenantID uuid.UUID) *models.Category {
	category := f.Create()
	category.TenantID = tenantID
	return category
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Article is a single story, either ingested from a feed or authored by an
// editor. The (tenant_id, link) pair is the dedup key for feed ingestion:
// a conflicting insert is skipped, never updated.
type Article struct {
	BaseModel
	TenantID  uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_articles_tenant_link;uniqueIndex:idx_articles_tenant_slug"`
	SourceID  *uuid.UUID `json:"source_id,omitempty" gorm:"type:uuid;index"`
	CreatorID *uuid.UUID `json:"creator_id,omitempty" gorm:"type:uuid;index"`

	Title       string  `json:"title" gorm:"not null;size:500"`
	Link        string  `json:"link" gorm:"not null;size:2048;uniqueIndex:idx_articles_tenant_link"`
	GUID        string  `json:"guid" gorm:"size:2048"`
	Description string  `json:"description" gorm:"type:text"`
	Content     string  `json:"content" gorm:"type:text"`
	ImageURL    string  `json:"image_url" gorm:"size:2048"`
	Author      string  `json:"author" gorm:"size:200"`
	Slug        *string `json:"slug,omitempty" gorm:"size:120;uniqueIndex:idx_articles_tenant_slug,where:slug IS NOT NULL"`

	Tags          datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb"`
	Status        ArticleStatus               `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	EditorialLock bool                        `json:"editorial_lock" gorm:"not null;default:false"`

	// SEO / Open Graph metadata
	SeoTitle       string `json:"seo_title" gorm:"size:200"`
	SeoDescription string `json:"seo_description" gorm:"size:500"`
	SeoKeywords    string `json:"seo_keywords" gorm:"size:500"`
	OgImage        string `json:"og_image" gorm:"size:2048"`

	PublishedAt *time.Time `json:"published_at"`
	FetchedAt   time.Time  `json:"fetched_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for Article
func (Article) TableName() string {
	return "articles"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsSource is a syndication feed registered by a tenant.
// Only NEWS-type sources are syncable.
type NewsSource struct {
	BaseModel
	TenantID        uuid.UUID       `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_sources_tenant_name"`
	Name            string          `json:"name" gorm:"not null;size:200;uniqueIndex:idx_sources_tenant_name" validate:"required,min=1,max=200"`
	BaseURL         string          `json:"base_url" gorm:"not null;size:2048" validate:"required,url,max=2048"`
	Type            SourceType      `json:"type" gorm:"type:varchar(20);not null;default:'NEWS'" validate:"required"`
	Category        string          `json:"category" gorm:"size:100"`
	UpdateFrequency UpdateFrequency `json:"update_frequency" gorm:"type:varchar(20);not null;default:'DAILY'"`
	LastFetchedAt   *time.Time      `json:"last_fetched_at"`

	// Relationships
	Articles []Article `json:"articles,omitempty" gorm:"foreignKey:SourceID"`
}

// TableName returns the table name for NewsSource
func (NewsSource) TableName() string {
	return "news_sources"
}

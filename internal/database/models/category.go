package models

import (
	"github.com/google/uuid"
)

// Category is a tenant-scoped editorial grouping for articles
type Category struct {
	BaseModel
	TenantID    uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_categories_tenant_name;uniqueIndex:idx_categories_tenant_slug"`
	Name        string    `json:"name" gorm:"not null;size:200;uniqueIndex:idx_categories_tenant_name" validate:"required,min=1,max=200"`
	Slug        string    `json:"slug" gorm:"not null;size:120;uniqueIndex:idx_categories_tenant_slug" validate:"required,max=120"`
	Description string    `json:"description" gorm:"size:500" validate:"max=500"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}

package models

import (
	"encoding/json"
)

// Tenant is the root entity for multi-tenancy. Every other entity except
// AuditLog carries a TenantID and all queries must filter by it.
type Tenant struct {
	BaseModel
	Name           string          `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Slug           string          `json:"slug" gorm:"uniqueIndex;not null;size:120" validate:"required,max=120"`
	BrandingConfig json.RawMessage `json:"branding_config" gorm:"type:jsonb"`
	SystemConfig   json.RawMessage `json:"system_config" gorm:"type:jsonb"`

	// Relationships
	Users      []User       `json:"users,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Sources    []NewsSource `json:"sources,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Articles   []Article    `json:"articles,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Categories []Category   `json:"categories,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

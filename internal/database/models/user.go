package models

import (
	"github.com/google/uuid"
)

// User represents an account inside a tenant
type User struct {
	BaseModel
	TenantID     uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string    `json:"-" gorm:"not null;size:100"`
	Name         string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Role         UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'VIEWER'" validate:"required"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AuditAction enumerates the audited operations
type AuditAction string

const (
	ActionUserLogin      AuditAction = "USER_LOGIN"
	ActionUserLogout     AuditAction = "USER_LOGOUT"
	ActionUserRegister   AuditAction = "USER_REGISTER"
	ActionUserCreate     AuditAction = "USER_CREATE"
	ActionUserUpdate     AuditAction = "USER_UPDATE"
	ActionUserRoleUpdate AuditAction = "USER_ROLE_UPDATE"
	ActionUserDelete     AuditAction = "USER_DELETE"
	ActionPasswordChange AuditAction = "PASSWORD_CHANGE"

	ActionTenantCreate AuditAction = "TENANT_CREATE"
	ActionTenantUpdate AuditAction = "TENANT_UPDATE"

	ActionSourceCreate AuditAction = "SOURCE_CREATE"
	ActionSourceUpdate AuditAction = "SOURCE_UPDATE"
	ActionSourceDelete AuditAction = "SOURCE_DELETE"
	ActionSourceSync   AuditAction = "SOURCE_SYNC"

	ActionArticleCreate AuditAction = "ARTICLE_CREATE"
	ActionArticleUpdate AuditAction = "ARTICLE_UPDATE"
	ActionArticleDelete AuditAction = "ARTICLE_DELETE"

	ActionCategoryCreate AuditAction = "CATEGORY_CREATE"
	ActionCategoryUpdate AuditAction = "CATEGORY_UPDATE"
	ActionCategoryDelete AuditAction = "CATEGORY_DELETE"

	ActionAISeoGenerate  AuditAction = "AI_SEO_GENERATE"
	ActionAIGrammarCheck AuditAction = "AI_GRAMMAR_CHECK"
	ActionSystemError    AuditAction = "SYSTEM_ERROR"
)

// AuditLog is an append-only record of who did what to which resource.
// Rows are never updated or deleted by the application.
type AuditLog struct {
	BaseModel
	TenantID     uuid.UUID       `json:"tenant_id" gorm:"type:uuid;not null;index"`
	ActorID      *uuid.UUID      `json:"actor_id,omitempty" gorm:"type:uuid;index"`
	ActorEmail   string          `json:"actor_email" gorm:"size:255"`
	ActorRole    string          `json:"actor_role" gorm:"size:20"`
	Action       AuditAction     `json:"action" gorm:"type:varchar(50);not null;index"`
	ResourceType string          `json:"resource_type" gorm:"size:50;index"`
	ResourceID   string          `json:"resource_id" gorm:"size:100"`
	IPAddress    string          `json:"ip_address" gorm:"size:64"`
	UserAgent    string          `json:"user_agent" gorm:"size:500"`
	OldValue     json.RawMessage `json:"old_value,omitempty" gorm:"type:jsonb"`
	NewValue     json.RawMessage `json:"new_value,omitempty" gorm:"type:jsonb"`
	Metadata     json.RawMessage `json:"metadata,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

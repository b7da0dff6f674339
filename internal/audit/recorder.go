package audit

import (
	"context"
	"encoding/json"

	"newsroom-backend/internal/database/models"
	"newsroom-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=recorder.go -destination=../mocks/audit_mocks.go -package=mocks

// RequestMeta carries the client transport details attached to every entry
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// Entry describes one logical change to be recorded
type Entry struct {
	TenantID     uuid.UUID
	ActorID      *uuid.UUID
	ActorEmail   string
	ActorRole    string
	Action       models.AuditAction
	ResourceType string
	ResourceID   string
	Meta         RequestMeta
	OldValue     interface{}
	NewValue     interface{}
	Metadata     interface{}
}

// Recorder appends immutable audit records. Record is best-effort: it is
// called after the change it documents has committed, and its own failure
// is logged and swallowed so it can never fail the parent operation.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

// DBRecorder persists audit entries through GORM
type DBRecorder struct {
	db  *gorm.DB
	log *logger.Logger
}

// Ensure DBRecorder implements Recorder
var _ Recorder = (*DBRecorder)(nil)

// NewDBRecorder creates a new database-backed audit recorder
func NewDBRecorder(db *gorm.DB) *DBRecorder {
	return &DBRecorder{
		db:  db,
		log: logger.WithComponent("audit"),
	}
}

// Record writes one audit row. Failures are logged, never returned.
func (r *DBRecorder) Record(ctx context.Context, entry Entry) {
	row := &models.AuditLog{
		TenantID:     entry.TenantID,
		ActorID:      entry.ActorID,
		ActorEmail:   entry.ActorEmail,
		ActorRole:    entry.ActorRole,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		IPAddress:    entry.Meta.IPAddress,
		UserAgent:    entry.Meta.UserAgent,
		OldValue:     marshal(entry.OldValue),
		NewValue:     marshal(entry.NewValue),
		Metadata:     marshal(entry.Metadata),
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		r.log.WithError(err).WithFields(map[string]interface{}{
			"action":        entry.Action,
			"resource_type": entry.ResourceType,
			"resource_id":   entry.ResourceID,
		}).Error("failed to write audit log entry")
	}
}

// marshal converts a snapshot to JSON, returning nil on failure or nil input
func marshal(v interface{}) json.RawMessage {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}

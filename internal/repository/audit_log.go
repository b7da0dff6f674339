package repository

import (
	"newsroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ AuditLogRepositoryInterface = (*AuditLogRepository)(nil)

// AuditLogRepository handles read access to the audit trail
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// GetAll retrieves audit log entries for a tenant, newest first
func (r *AuditLogRepository) GetAll(tenantID uuid.UUID, filter AuditLogFilter, limit, offset int) ([]models.AuditLog, int64, error) {
	var logs []models.AuditLog
	var total int64

	query := r.db.Model(&models.AuditLog{}).Where("tenant_id = ?", tenantID)
	if filter.Action != nil {
		query = query.Where("action = ?", *filter.Action)
	}
	if filter.ResourceType != nil {
		query = query.Where("resource_type = ?", *filter.ResourceType)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

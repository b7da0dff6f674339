package service

import (
	"encoding/json"
	"fmt"

	"newsroom-backend/internal/database/models"
	"newsroom-backend/internal/repository"

	"github.com/google/uuid"
)

// AuditLogService exposes the audit trail to tenant admins
type AuditLogService struct {
	repo repository.AuditLogRepositoryInterface
}

// Ensure AuditLogService implements AuditLogServiceInterface
var _ AuditLogServiceInterface = (*AuditLogService)(nil)

// NewAuditLogService creates a new audit log service
func NewAuditLogService(repo repository.AuditLogRepositoryInterface) *AuditLogService {
	return &AuditLogService{repo: repo}
}

// ListAuditLogsRequest carries listing filters and pagination
type ListAuditLogsRequest struct {
	Action       *string
	ResourceType *string
	Page         int
	PageSize     int
}

// AuditLogResponse represents one audit trail entry
type AuditLogResponse struct {
	ID           uuid.UUID          `json:"id"`
	ActorID      *uuid.UUID         `json:"actor_id,omitempty"`
	ActorEmail   string             `json:"actor_email"`
	ActorRole    string             `json:"actor_role"`
	Action       models.AuditAction `json:"action"`
	ResourceType string             `json:"resource_type"`
	ResourceID   string             `json:"resource_id"`
	IPAddress    string             `json:"ip_address"`
	UserAgent    string             `json:"user_agent"`
	OldValue     json.RawMessage    `json:"old_value,omitempty" swaggertype:"object"`
	NewValue     json.RawMessage    `json:"new_value,omitempty" swaggertype:"object"`
	Metadata     json.RawMessage    `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt    string             `json:"created_at"`
}

// AuditLogListResponse represents a paginated audit trail page
type AuditLogListResponse struct {
	Data []AuditLogResponse `json:"data"`
	Meta ListMeta           `json:"meta"`
}

// ListMeta carries pagination metadata
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// newListMeta builds pagination metadata for a page of limit items
func newListMeta(total int64, page, limit int) ListMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return ListMeta{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

// GetAuditLogs retrieves audit entries for a tenant, newest first
func (s *AuditLogService) GetAuditLogs(tenantID uuid.UUID, req *ListAuditLogsRequest) (*AuditLogListResponse, error) {
	page, pageSize, err := normalizePagination(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	var filter repository.AuditLogFilter
	if req.Action != nil {
		action := models.AuditAction(*req.Action)
		filter.Action = &action
	}
	filter.ResourceType = req.ResourceType

	logs, total, err := s.repo.GetAll(tenantID, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}

	data := make([]AuditLogResponse, len(logs))
	for i, entry := range logs {
		data[i] = AuditLogResponse{
			ID:           entry.ID,
			ActorID:      entry.ActorID,
			ActorEmail:   entry.ActorEmail,
			ActorRole:    entry.ActorRole,
			Action:       entry.Action,
			ResourceType: entry.ResourceType,
			ResourceID:   entry.ResourceID,
			IPAddress:    entry.IPAddress,
			UserAgent:    entry.UserAgent,
			OldValue:     entry.OldValue,
			NewValue:     entry.NewValue,
			Metadata:     entry.Metadata,
			CreatedAt:    entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return &AuditLogListResponse{
		Data: data,
		Meta: newListMeta(total, page, pageSize),
	}, nil
}

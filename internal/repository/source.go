package repository

import (
	"time"

	"newsroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ SourceRepositoryInterface = (*SourceRepository)(nil)

// SourceRepository handles database operations for news sources
type SourceRepository struct {
	db *gorm.DB
}

// NewSourceRepository creates a new news source repository
func NewSourceRepository(db *gorm.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// Create creates a new news source
func (r *SourceRepository) Create(source *models.NewsSource) error {
	return sourceConflict(r.db.Create(source).Error)
}

// GetByID retrieves a news source by ID within a tenant
func (r *SourceRepository) GetByID(tenantID, id uuid.UUID) (*models.NewsSource, error) {
	var source models.NewsSource
	err := r.db.First(&source, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &source, nil
}

// GetByName retrieves a news source by name within a tenant
func (r *SourceRepository) GetByName(tenantID uuid.UUID, name string) (*models.NewsSource, error) {
	var source models.NewsSource
	err := r.db.First(&source, "tenant_id = ? AND name = ?", tenantID, name).Error
	if err != nil {
		return nil, err
	}
	return &source, nil
}

// GetAll retrieves all news sources for a tenant with pagination
func (r *SourceRepository) GetAll(tenantID uuid.UUID, filter SourceFilter, limit, offset int) ([]models.NewsSource, int64, error) {
	var sources []models.NewsSource
	var total int64

	query := r.db.Model(&models.NewsSource{}).Where("tenant_id = ?", tenantID)
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.UpdateFrequency != nil {
		query = query.Where("update_frequency = ?", *filter.UpdateFrequency)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&sources).Error; err != nil {
		return nil, 0, err
	}

	return sources, total, nil
}

// GetSyncableByFrequency retrieves NEWS sources across all tenants that
// are due for a scheduled sync at the given frequency
func (r *SourceRepository) GetSyncableByFrequency(freq models.UpdateFrequency) ([]models.NewsSource, error) {
	var sources []models.NewsSource
	err := r.db.
		Where("type = ? AND update_frequency = ?", models.SourceTypeNews, freq).
		Find(&sources).Error
	if err != nil {
		return nil, err
	}
	return sources, nil
}

// Update updates a news source
func (r *SourceRepository) Update(source *models.NewsSource) error {
	return sourceConflict(r.db.Save(source).Error)
}

// UpdateLastFetchedAt records the time of the latest sync attempt.
// It is written even when the sync inserted nothing.
func (r *SourceRepository) UpdateLastFetchedAt(tenantID, id uuid.UUID, fetchedAt time.Time) error {
	return r.db.Model(&models.NewsSource{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Update("last_fetched_at", fetchedAt).Error
}

// Delete deletes a news source within a tenant
func (r *SourceRepository) Delete(tenantID, id uuid.UUID) error {
	result := r.db.Delete(&models.NewsSource{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

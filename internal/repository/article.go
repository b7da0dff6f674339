package repository

import (
	"time"

	"newsroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ ArticleRepositoryInterface = (*ArticleRepository)(nil)

// ArticleRepository handles database operations for articles
type ArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Create creates a new article
func (r *ArticleRepository) Create(article *models.Article) error {
	return articleConflict(r.db.Create(article).Error)
}

// GetByID retrieves an article by ID within a tenant
func (r *ArticleRepository) GetByID(tenantID, id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetByLink retrieves an article by its canonical link within a tenant
func (r *ArticleRepository) GetByLink(tenantID uuid.UUID, link string) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, "tenant_id = ? AND link = ?", tenantID, link).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetBySlug retrieves an article by slug within a tenant
func (r *ArticleRepository) GetBySlug(tenantID uuid.UUID, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, "tenant_id = ? AND slug = ?", tenantID, slug).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetAll retrieves articles for a tenant with filtering and pagination
func (r *ArticleRepository) GetAll(tenantID uuid.UUID, filter ArticleFilter, limit, offset int) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.applyFilter(r.db.Model(&models.Article{}).Where("tenant_id = ?", tenantID), filter)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *ArticleRepository) applyFilter(query *gorm.DB, filter ArticleFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.SourceID != nil {
		query = query.Where("source_id = ?", *filter.SourceID)
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	return query
}

// Update updates an article
func (r *ArticleRepository) Update(article *models.Article) error {
	return articleConflict(r.db.Save(article).Error)
}

// Delete deletes an article within a tenant
func (r *ArticleRepository) Delete(tenantID, id uuid.UUID) error {
	result := r.db.Delete(&models.Article{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ArticleRepository) statsQuery(tenantID uuid.UUID, filter StatsFilter) *gorm.DB {
	query := r.db.Model(&models.Article{}).Where("tenant_id = ?", tenantID)
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}
	return query
}

// CountTotal counts articles matching the stats filter
func (r *ArticleRepository) CountTotal(tenantID uuid.UUID, filter StatsFilter) (int64, error) {
	var total int64
	err := r.statsQuery(tenantID, filter).Count(&total).Error
	return total, err
}

// CountByStatus counts articles per lifecycle status
func (r *ArticleRepository) CountByStatus(tenantID uuid.UUID, filter StatsFilter) (map[models.ArticleStatus]int64, error) {
	var rows []struct {
		Status models.ArticleStatus
		Count  int64
	}
	err := r.statsQuery(tenantID, filter).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ArticleStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountByHour groups article counts by the hour of creation ("HH24:00")
func (r *ArticleRepository) CountByHour(tenantID uuid.UUID, filter StatsFilter) ([]BucketCount, error) {
	var buckets []BucketCount
	err := r.statsQuery(tenantID, filter).
		Select("to_char(created_at, 'HH24:00') AS bucket, COUNT(*) AS count").
		Group("bucket").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

// CountByDay groups article counts by the day of creation ("YYYY-MM-DD")
func (r *ArticleRepository) CountByDay(tenantID uuid.UUID, filter StatsFilter) ([]BucketCount, error) {
	var buckets []BucketCount
	err := r.statsQuery(tenantID, filter).
		Select("to_char(created_at, 'YYYY-MM-DD') AS bucket, COUNT(*) AS count").
		Group("bucket").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

// EarliestCreatedAt returns the creation time of the oldest matching
// article, or nil when the tenant has none
func (r *ArticleRepository) EarliestCreatedAt(tenantID uuid.UUID, filter StatsFilter) (*time.Time, error) {
	var earliest *time.Time
	err := r.statsQuery(tenantID, filter).
		Select("MIN(created_at)").
		Scan(&earliest).Error
	if err != nil {
		return nil, err
	}
	return earliest, nil
}

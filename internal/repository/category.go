package repository

import (
	"newsroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ CategoryRepositoryInterface = (*CategoryRepository)(nil)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(category *models.Category) error {
	return categoryConflict(r.db.Create(category).Error)
}

// GetByID retrieves a category by ID within a tenant
func (r *CategoryRepository) GetByID(tenantID, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByName retrieves a category by name within a tenant
func (r *CategoryRepository) GetByName(tenantID uuid.UUID, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "tenant_id = ? AND name = ?", tenantID, name).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetBySlug retrieves a category by slug within a tenant
func (r *CategoryRepository) GetBySlug(tenantID uuid.UUID, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "tenant_id = ? AND slug = ?", tenantID, slug).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetAll retrieves all categories for a tenant with pagination
func (r *CategoryRepository) GetAll(tenantID uuid.UUID, limit, offset int) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64

	query := r.db.Model(&models.Category{}).Where("tenant_id = ?", tenantID)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

// Update updates a category
func (r *CategoryRepository) Update(category *models.Category) error {
	return categoryConflict(r.db.Save(category).Error)
}

// Delete deletes a category within a tenant
func (r *CategoryRepository) Delete(tenantID, id uuid.UUID) error {
	result := r.db.Delete(&models.Category{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

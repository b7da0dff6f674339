package repository

import (
	"newsroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ UserRepositoryInterface = (*UserRepository)(nil)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return userConflict(r.db.Create(user).Error)
}

// GetByID retrieves a user by ID within a tenant
func (r *UserRepository) GetByID(tenantID, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email. Emails are unique across all
// tenants, so this lookup is not tenant-scoped; it backs login.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users for a tenant with pagination
func (r *UserRepository) GetAll(tenantID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{}).Where("tenant_id = ?", tenantID)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return userConflict(r.db.Save(user).Error)
}

// Delete deletes a user within a tenant
func (r *UserRepository) Delete(tenantID, id uuid.UUID) error {
	result := r.db.Delete(&models.User{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

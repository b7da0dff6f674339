package repository

import (
	"newsroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ TenantRepositoryInterface = (*TenantRepository)(nil)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return tenantConflict(r.db.Create(tenant).Error)
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetBySlug retrieves a tenant by slug
func (r *TenantRepository) GetBySlug(slug string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Update updates a tenant
func (r *TenantRepository) Update(tenant *models.Tenant) error {
	return tenantConflict(r.db.Save(tenant).Error)
}

// CreateWithAdmin creates a tenant and its first admin user in one
// transaction. Either both rows exist afterwards or neither does.
func (r *TenantRepository) CreateWithAdmin(tenant *models.Tenant, admin *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return tenantConflict(err)
		}
		admin.TenantID = tenant.ID
		return userConflict(tx.Create(admin).Error)
	})
}

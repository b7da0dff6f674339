package repository

import (
	"testing"

	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TenantRepositoryTestSuite tests the TenantRepository
type TenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TenantRepository
}

// SetupSuite runs before all tests in the suite
func (suite *TenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTenantRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *TenantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TenantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TenantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetBySlug tests creating and retrieving a tenant by slug
func (suite *TenantRepositoryTestSuite) TestCreateAndGetBySlug() {
	tenant := testutils.NewTenantFactory().WithName("Daily Planet", "daily-planet")
	suite.NoError(suite.repo.Create(tenant))

	retrieved, err := suite.repo.GetBySlug("daily-planet")

	suite.NoError(err)
	suite.Equal(tenant.ID, retrieved.ID)
	suite.Equal("Daily Planet", retrieved.Name)
}

// TestDuplicateSlugRejected tests the unique slug constraint
func (suite *TenantRepositoryTestSuite) TestDuplicateSlugRejected() {
	suite.NoError(suite.repo.Create(testutils.NewTenantFactory().WithName("Daily Planet", "daily-planet")))

	err := suite.repo.Create(testutils.NewTenantFactory().WithName("Daily Planet 2", "daily-planet"))

	suite.ErrorIs(err, apperrors.ErrTenantSlugExists)
}

// TestCreateWithAdmin tests the tenant bootstrap transaction
func (suite *TenantRepositoryTestSuite) TestCreateWithAdmin() {
	tenant := testutils.NewTenantFactory().WithName("Daily Planet", "daily-planet")
	admin := testutils.NewUserFactory().Create()
	admin.Role = models.RoleAdmin

	suite.NoError(suite.repo.CreateWithAdmin(tenant, admin))

	suite.Equal(tenant.ID, admin.TenantID)

	var user models.User
	suite.NoError(suite.baseTestSuite.DB.First(&user, "email = ?", admin.Email).Error)
	suite.Equal(models.RoleAdmin, user.Role)
	suite.Equal(tenant.ID, user.TenantID)
}

// TestCreateWithAdminRollsBack tests that a failed admin insert leaves no tenant row
func (suite *TenantRepositoryTestSuite) TestCreateWithAdminRollsBack() {
	existing := testutils.NewUserFactory().Create()
	tenant := testutils.NewTenantFactory().WithName("First", "first")
	suite.NoError(suite.repo.CreateWithAdmin(tenant, existing))

	// Reusing the email must fail the transaction and roll back the tenant
	second := testutils.NewTenantFactory().WithName("Second", "second")
	dup := testutils.NewUserFactory().Create()
	dup.Email = existing.Email

	err := suite.repo.CreateWithAdmin(second, dup)
	suite.ErrorIs(err, apperrors.ErrUserExists)

	_, err = suite.repo.GetBySlug("second")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestTenantRepositoryTestSuite runs the test suite
func TestTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}

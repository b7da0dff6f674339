package repository

import (
	"testing"

	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	tenant        *models.Tenant
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.tenant = testutils.NewTenantFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.tenant).Error)
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) createUser() *models.User {
	user := testutils.NewUserFactory().WithTenant(suite.tenant.ID)
	suite.NoError(suite.repo.Create(user))
	return user
}

// TestCreateAndGetByEmail tests creating and retrieving a user by email
func (suite *UserRepositoryTestSuite) TestCreateAndGetByEmail() {
	user := suite.createUser()

	retrieved, err := suite.repo.GetByEmail(user.Email)

	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
	suite.Equal(models.RoleEditor, retrieved.Role)
}

// TestDuplicateEmailRejected tests the global unique email constraint
func (suite *UserRepositoryTestSuite) TestDuplicateEmailRejected() {
	user := suite.createUser()

	otherTenant := testutils.NewTenantFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherTenant).Error)

	dup := testutils.NewUserFactory().WithTenant(otherTenant.ID)
	dup.Email = user.Email
	err := suite.repo.Create(dup)

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestGetByIDWrongTenant tests that lookups do not cross tenant boundaries
func (suite *UserRepositoryTestSuite) TestGetByIDWrongTenant() {
	user := suite.createUser()

	otherTenant := testutils.NewTenantFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherTenant).Error)

	retrieved, err := suite.repo.GetByID(otherTenant.ID, user.ID)

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestGetAll tests listing users for a tenant with pagination
func (suite *UserRepositoryTestSuite) TestGetAll() {
	suite.createUser()
	suite.createUser()
	suite.createUser()

	users, total, err := suite.repo.GetAll(suite.tenant.ID, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(users, 2)
}

// TestUpdate tests updating a user's role
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.createUser()
	user.Role = models.RoleAdmin

	suite.NoError(suite.repo.Update(user))

	retrieved, err := suite.repo.GetByID(suite.tenant.ID, user.ID)
	suite.NoError(err)
	suite.Equal(models.RoleAdmin, retrieved.Role)
}

// TestDelete tests deleting a user
func (suite *UserRepositoryTestSuite) TestDelete() {
	user := suite.createUser()

	suite.NoError(suite.repo.Delete(suite.tenant.ID, user.ID))

	_, err := suite.repo.GetByID(suite.tenant.ID, user.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteNotFound tests deleting a missing user
func (suite *UserRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(suite.tenant.ID, uuid.New())
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

package repository

import (
	"testing"

	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CategoryRepositoryTestSuite tests the CategoryRepository
type CategoryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CategoryRepository
	tenant        *models.Tenant
}

// SetupSuite runs before all tests in the suite
func (suite *CategoryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCategoryRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *CategoryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CategoryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.tenant = testutils.NewTenantFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.tenant).Error)
}

// TearDownTest runs after each test
func (suite *CategoryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CategoryRepositoryTestSuite) createCategory(name, slug string) *models.Category {
	category := testutils.NewCategoryFactory().WithTenant(suite.tenant.ID)
	category.Name = name
	category.Slug = slug
	suite.NoError(suite.repo.Create(category))
	return category
}

// TestCreateAndGetBySlug tests creating and retrieving a category by slug
func (suite *CategoryRepositoryTestSuite) TestCreateAndGetBySlug() {
	category := suite.createCategory("World News", "world-news")

	retrieved, err := suite.repo.GetBySlug(suite.tenant.ID, "world-news")

	suite.NoError(err)
	suite.Equal(category.ID, retrieved.ID)
	suite.Equal("World News", retrieved.Name)
}

// TestDuplicateNameRejected tests the per-tenant unique name constraint
func (suite *CategoryRepositoryTestSuite) TestDuplicateNameRejected() {
	suite.createCategory("World News", "world-news")

	dup := testutils.NewCategoryFactory().WithTenant(suite.tenant.ID)
	dup.Name = "World News"
	err := suite.repo.Create(dup)

	suite.ErrorIs(err, apperrors.ErrCategoryExists)
}

// TestGetAllOrdering tests listing categories ordered by name ascending
func (suite *CategoryRepositoryTestSuite) TestGetAllOrdering() {
	suite.createCategory("Politics", "politics")
	suite.createCategory("Business", "business")
	suite.createCategory("Sports", "sports")

	items, total, err := suite.repo.GetAll(suite.tenant.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Equal("Business", items[0].Name)
	suite.Equal("Politics", items[1].Name)
	suite.Equal("Sports", items[2].Name)
}

// TestGetByIDWrongTenant tests that lookups do not cross tenant boundaries
func (suite *CategoryRepositoryTestSuite) TestGetByIDWrongTenant() {
	category := suite.createCategory("World News", "world-news")

	otherTenant := testutils.NewTenantFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherTenant).Error)

	retrieved, err := suite.repo.GetByID(otherTenant.ID, category.ID)

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestDelete tests deleting a category
func (suite *CategoryRepositoryTestSuite) TestDelete() {
	category := suite.createCategory("World News", "world-news")

	suite.NoError(suite.repo.Delete(suite.tenant.ID, category.ID))

	_, err := suite.repo.GetByID(suite.tenant.ID, category.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestCategoryRepositoryTestSuite runs the test suite
func TestCategoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryTestSuite))
}

package repository

import (
	"testing"
	"time"

	"newsroom-backend/internal/database/models"
	"newsroom-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SourceRepositoryTestSuite tests the SourceRepository
type SourceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SourceRepository
	tenant        *models.Tenant
}

// SetupSuite runs before all tests in the suite
func (suite *SourceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSourceRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *SourceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SourceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.tenant = testutils.NewTenantFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.tenant).Error)
}

// TearDownTest runs after each test
func (suite *SourceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SourceRepositoryTestSuite) createSource(tenantID uuid.UUID) *models.NewsSource {
	source := testutils.NewSourceFactory().WithTenant(tenantID)
	suite.NoError(suite.repo.Create(source))
	return source
}

// TestCreateAndGetByID tests creating and retrieving a source
func (suite *SourceRepositoryTestSuite) TestCreateAndGetByID() {
	source := suite.createSource(suite.tenant.ID)

	retrieved, err := suite.repo.GetByID(suite.tenant.ID, source.ID)

	suite.NoError(err)
	suite.Equal(source.Name, retrieved.Name)
	suite.Equal(models.SourceTypeNews, retrieved.Type)
}

// TestDuplicateNameRejected tests the per-tenant unique name constraint
func (suite *SourceRepositoryTestSuite) TestDuplicateNameRejected() {
	source := suite.createSource(suite.tenant.ID)

	dup := testutils.NewSourceFactory().WithTenant(suite.tenant.ID)
	dup.Name = source.Name
	err := suite.repo.Create(dup)

	suite.Error(err)
	suite.True(isUniqueViolation(err))
}

// TestGetByIDWrongTenant tests that lookups do not cross tenant boundaries
func (suite *SourceRepositoryTestSuite) TestGetByIDWrongTenant() {
	source := suite.createSource(suite.tenant.ID)

	otherTenant := testutils.NewTenantFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherTenant).Error)

	retrieved, err := suite.repo.GetByID(otherTenant.ID, source.ID)

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestGetAllWithTypeFilter tests listing sources filtered by type
func (suite *SourceRepositoryTestSuite) TestGetAllWithTypeFilter() {
	suite.createSource(suite.tenant.ID)
	blog := testutils.NewSourceFactory().WithType(suite.tenant.ID, models.SourceTypeBlog)
	suite.NoError(suite.repo.Create(blog))

	blogType := models.SourceTypeBlog
	items, total, err := suite.repo.GetAll(suite.tenant.ID, SourceFilter{Type: &blogType}, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(blog.ID, items[0].ID)
}

// TestGetSyncableByFrequency tests that only NEWS sources at the given
// frequency are returned, across tenants
func (suite *SourceRepositoryTestSuite) TestGetSyncableByFrequency() {
	hourly := suite.createSource(suite.tenant.ID)

	daily := testutils.NewSourceFactory().WithTenant(suite.tenant.ID)
	daily.UpdateFrequency = models.FrequencyDaily
	suite.NoError(suite.repo.Create(daily))

	blog := testutils.NewSourceFactory().WithType(suite.tenant.ID, models.SourceTypeBlog)
	suite.NoError(suite.repo.Create(blog))

	sources, err := suite.repo.GetSyncableByFrequency(models.FrequencyHourly)

	suite.NoError(err)
	suite.Len(sources, 1)
	suite.Equal(hourly.ID, sources[0].ID)
}

// TestUpdateLastFetchedAt tests the sync bookkeeping update
func (suite *SourceRepositoryTestSuite) TestUpdateLastFetchedAt() {
	source := suite.createSource(suite.tenant.ID)
	suite.Nil(source.LastFetchedAt)

	fetchedAt := time.Now().UTC().Truncate(time.Second)
	suite.NoError(suite.repo.UpdateLastFetchedAt(suite.tenant.ID, source.ID, fetchedAt))

	retrieved, err := suite.repo.GetByID(suite.tenant.ID, source.ID)
	suite.NoError(err)
	suite.NotNil(retrieved.LastFetchedAt)
	suite.WithinDuration(fetchedAt, *retrieved.LastFetchedAt, time.Second)
}

// TestDelete tests deleting a source
func (suite *SourceRepositoryTestSuite) TestDelete() {
	source := suite.createSource(suite.tenant.ID)

	suite.NoError(suite.repo.Delete(suite.tenant.ID, source.ID))

	_, err := suite.repo.GetByID(suite.tenant.ID, source.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteNotFound tests deleting a missing source
func (suite *SourceRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(suite.tenant.ID, uuid.New())
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestSourceRepositoryTestSuite runs the test suite
func TestSourceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SourceRepositoryTestSuite))
}

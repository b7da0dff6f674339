package repository

import (
	"testing"
	"time"

	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ArticleRepositoryTestSuite tests the ArticleRepository and the
// skip-on-conflict inserters
type ArticleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ArticleRepository
	tenant        *models.Tenant
	source        *models.NewsSource
}

// SetupSuite runs before all tests in the suite
func (suite *ArticleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewArticleRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ArticleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ArticleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.tenant = suite.createTenant()
	suite.source = suite.createSource(suite.tenant.ID)
}

// TearDownTest runs after each test
func (suite *ArticleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ArticleRepositoryTestSuite) createTenant() *models.Tenant {
	tenant := testutils.NewTenantFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)
	return tenant
}

func (suite *ArticleRepositoryTestSuite) createSource(tenantID uuid.UUID) *models.NewsSource {
	source := testutils.NewSourceFactory().WithTenant(tenantID)
	suite.NoError(suite.baseTestSuite.DB.Create(source).Error)
	return source
}

func (suite *ArticleRepositoryTestSuite) createArticle(link string) *models.Article {
	article := testutils.NewArticleFactory().WithLink(suite.tenant.ID, suite.source.ID, link)
	suite.NoError(suite.repo.Create(article))
	return article
}

// TestCreateAndGetByID tests creating and retrieving an article
func (suite *ArticleRepositoryTestSuite) TestCreateAndGetByID() {
	article := suite.createArticle("https://news.test.com/a1")

	retrieved, err := suite.repo.GetByID(suite.tenant.ID, article.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(article.ID, retrieved.ID)
	suite.Equal(article.Link, retrieved.Link)
}

// TestGetByIDWrongTenant tests that lookups do not cross tenant boundaries
func (suite *ArticleRepositoryTestSuite) TestGetByIDWrongTenant() {
	article := suite.createArticle("https://news.test.com/a1")
	otherTenant := suite.createTenant()

	retrieved, err := suite.repo.GetByID(otherTenant.ID, article.ID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestGetByLink tests retrieving an article by its canonical link
func (suite *ArticleRepositoryTestSuite) TestGetByLink() {
	article := suite.createArticle("https://news.test.com/a1")

	retrieved, err := suite.repo.GetByLink(suite.tenant.ID, "https://news.test.com/a1")

	suite.NoError(err)
	suite.Equal(article.ID, retrieved.ID)
}

// TestDuplicateLinkRejected tests the per-tenant unique link constraint
func (suite *ArticleRepositoryTestSuite) TestDuplicateLinkRejected() {
	suite.createArticle("https://news.test.com/a1")

	dup := testutils.NewArticleFactory().WithLink(suite.tenant.ID, suite.source.ID, "https://news.test.com/a1")
	err := suite.repo.Create(dup)

	suite.ErrorIs(err, apperrors.ErrArticleLinkExists)
}

// TestDuplicateSlugConflict tests that a slug collision maps to the slug conflict error
func (suite *ArticleRepositoryTestSuite) TestDuplicateSlugConflict() {
	first := suite.createArticle("https://news.test.com/a1")
	slug := "city-budget"
	first.Slug = &slug
	suite.NoError(suite.repo.Update(first))

	second := testutils.NewArticleFactory().WithLink(suite.tenant.ID, suite.source.ID, "https://news.test.com/a2")
	second.Slug = &slug
	err := suite.repo.Create(second)

	suite.ErrorIs(err, apperrors.ErrArticleSlugExists)
}

// TestSameLinkDifferentTenants tests that the link constraint is tenant-scoped
func (suite *ArticleRepositoryTestSuite) TestSameLinkDifferentTenants() {
	suite.createArticle("https://news.test.com/a1")

	otherTenant := suite.createTenant()
	otherSource := suite.createSource(otherTenant.ID)
	other := testutils.NewArticleFactory().WithLink(otherTenant.ID, otherSource.ID, "https://news.test.com/a1")

	suite.NoError(suite.repo.Create(other))
}

// TestGetAllWithFilter tests listing with status and search filters
func (suite *ArticleRepositoryTestSuite) TestGetAllWithFilter() {
	a1 := suite.createArticle("https://news.test.com/a1")
	a1.Status = models.StatusPublished
	a1.Title = "Quarterly earnings report"
	suite.NoError(suite.repo.Update(a1))
	suite.createArticle("https://news.test.com/a2")

	published := models.StatusPublished
	items, total, err := suite.repo.GetAll(suite.tenant.ID, ArticleFilter{Status: &published}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(items, 1)
	suite.Equal(a1.ID, items[0].ID)

	search := "earnings"
	items, total, err = suite.repo.GetAll(suite.tenant.ID, ArticleFilter{Search: &search}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(a1.ID, items[0].ID)
}

// TestDeleteNotFound tests deleting a missing article
func (suite *ArticleRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(suite.tenant.ID, uuid.New())
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestBulkInsertSkipConflicts tests that the bulk inserter skips
// existing links and reports only the rows it wrote
func (suite *ArticleRepositoryTestSuite) TestBulkInsertSkipConflicts() {
	suite.createArticle("https://news.test.com/a1")

	factory := testutils.NewArticleFactory()
	batch := []models.Article{
		*factory.WithLink(suite.tenant.ID, suite.source.ID, "https://news.test.com/a1"),
		*factory.WithLink(suite.tenant.ID, suite.source.ID, "https://news.test.com/a2"),
		*factory.WithLink(suite.tenant.ID, suite.source.ID, "https://news.test.com/a3"),
	}

	inserter := NewBulkArticleInserter(suite.baseTestSuite.DB)
	inserted, err := inserter.InsertSkipConflicts(batch)

	suite.NoError(err)
	suite.Equal(int64(2), inserted)

	_, total, err := suite.repo.GetAll(suite.tenant.ID, ArticleFilter{}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
}

// TestBulkInsertIdempotent tests that re-running the same batch inserts nothing
func (suite *ArticleRepositoryTestSuite) TestBulkInsertIdempotent() {
	factory := testutils.NewArticleFactory()
	batch := []models.Article{
		*factory.WithLink(suite.tenant.ID, suite.source.ID, "https://news.test.com/a1"),
		*factory.WithLink(suite.tenant.ID, suite.source.ID, "https://news.test.com/a2"),
	}

	inserter := NewBulkArticleInserter(suite.baseTestSuite.DB)
	first, err := inserter.InsertSkipConflicts(batch)
	suite.NoError(err)
	suite.Equal(int64(2), first)

	rerun := []models.Article{
		*factory.WithLink(suite.tenant.ID, suite.source.ID, "https://news.test.com/a1"),
		*factory.WithLink(suite.tenant.ID, suite.source.ID, "https://news.test.com/a2"),
	}
	second, err := inserter.InsertSkipConflicts(rerun)
	suite.NoError(err)
	suite.Equal(int64(0), second)

	_, total, err := suite.repo.GetAll(suite.tenant.ID, ArticleFilter{}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
}

// TestPerRowInsertSkipConflicts tests the fallback inserter against the
// same dataset as the bulk path
func (suite *ArticleRepositoryTestSuite) TestPerRowInsertSkipConflicts() {
	suite.createArticle("https://news.test.com/a1")

	factory := testutils.NewArticleFactory()
	batch := []models.Article{
		*factory.WithLink(suite.tenant.ID, suite.source.ID, "https://news.test.com/a1"),
		*factory.WithLink(suite.tenant.ID, suite.source.ID, "https://news.test.com/a2"),
	}

	inserter := NewPerRowArticleInserter(suite.baseTestSuite.DB)
	inserted, err := inserter.InsertSkipConflicts(batch)

	suite.NoError(err)
	suite.Equal(int64(1), inserted)
}

// TestSelectArticleInserter tests inserter selection for the postgres dialect
func (suite *ArticleRepositoryTestSuite) TestSelectArticleInserter() {
	inserter := SelectArticleInserter(suite.baseTestSuite.DB)
	suite.IsType(&BulkArticleInserter{}, inserter)
}

// TestCountByStatus tests the per-status aggregate
func (suite *ArticleRepositoryTestSuite) TestCountByStatus() {
	a1 := suite.createArticle("https://news.test.com/a1")
	a1.Status = models.StatusPublished
	suite.NoError(suite.repo.Update(a1))
	suite.createArticle("https://news.test.com/a2")
	suite.createArticle("https://news.test.com/a3")

	counts, err := suite.repo.CountByStatus(suite.tenant.ID, StatsFilter{})

	suite.NoError(err)
	suite.Equal(int64(1), counts[models.StatusPublished])
	suite.Equal(int64(2), counts[models.StatusDraft])
}

// TestCountByDay tests the daily trend aggregate buckets
func (suite *ArticleRepositoryTestSuite) TestCountByDay() {
	suite.createArticle("https://news.test.com/a1")
	suite.createArticle("https://news.test.com/a2")

	buckets, err := suite.repo.CountByDay(suite.tenant.ID, StatsFilter{})

	suite.NoError(err)
	suite.Len(buckets, 1)
	suite.Equal(time.Now().UTC().Format("2006-01-02"), buckets[0].Bucket)
	suite.Equal(int64(2), buckets[0].Count)
}

// TestEarliestCreatedAt tests the oldest-article lookup
func (suite *ArticleRepositoryTestSuite) TestEarliestCreatedAt() {
	earliest, err := suite.repo.EarliestCreatedAt(suite.tenant.ID, StatsFilter{})
	suite.NoError(err)
	suite.Nil(earliest)

	suite.createArticle("https://news.test.com/a1")

	earliest, err = suite.repo.EarliestCreatedAt(suite.tenant.ID, StatsFilter{})
	suite.NoError(err)
	suite.NotNil(earliest)
}

// TestArticleRepositoryTestSuite runs the test suite
func TestArticleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleRepositoryTestSuite))
}

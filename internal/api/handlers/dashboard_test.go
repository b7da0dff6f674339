package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsroom-backend/internal/api/handlers"
	"newsroom-backend/internal/auth"
	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/mocks"
	"newsroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardHandlerTestSuite defines the test suite for DashboardHandler
type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockDashboardSvc *mocks.MockDashboardServiceInterface
	handler          *handlers.DashboardHandler
	router           *gin.Engine
	actor            *auth.Actor
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDashboardSvc = mocks.NewMockDashboardServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDashboardHandler(suite.mockDashboardSvc)
	suite.actor = &auth.Actor{
		ID:       uuid.New(),
		Email:    "viewer@newsroom.test",
		Role:     models.RoleViewer,
		TenantID: uuid.New(),
	}

	suite.router = gin.New()
	suite.router.Use(withActor(suite.actor))
	suite.router.GET("/dashboard/stats", suite.handler.GetStats)
}

func (suite *DashboardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DashboardHandlerTestSuite) TestGetStats_DefaultRange() {
	suite.mockDashboardSvc.EXPECT().
		GetStats(suite.actor, &service.DashboardStatsRequest{Range: "today"}).
		Return(&service.DashboardStatsResponse{
			TotalArticles: 7,
			ByStatus: map[models.ArticleStatus]int64{
				models.StatusDraft:     4,
				models.StatusPublished: 3,
				models.StatusArchived:  0,
			},
			Trend: []service.TrendPoint{{Bucket: "00:00", Count: 0}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.DashboardStatsResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(7), got.TotalArticles)
	assert.Len(suite.T(), got.Trend, 1)
}

func (suite *DashboardHandlerTestSuite) TestGetStats_ExplicitRange() {
	suite.mockDashboardSvc.EXPECT().
		GetStats(suite.actor, &service.DashboardStatsRequest{Range: "7d"}).
		Return(&service.DashboardStatsResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats?range=7d", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *DashboardHandlerTestSuite) TestGetStats_InvalidRange() {
	suite.mockDashboardSvc.EXPECT().
		GetStats(suite.actor, &service.DashboardStatsRequest{Range: "90d"}).
		Return(nil, apperrors.ErrInvalidRange)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats?range=90d", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

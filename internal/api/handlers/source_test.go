package handlers_test

import (
	"bytes"
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

// SourceHandlerTestSuite defines the test suite for SourceHandler
type SourceHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSourceSvc *mocks.MockSourceServiceInterface
	mockSyncSvc   *mocks.MockSyncServiceInterface
	handler       *handlers.SourceHandler
	router        *gin.Engine
	actor         *auth.Actor
}

func (suite *SourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSourceSvc = mocks.NewMockSourceServiceInterface(suite.ctrl)
	suite.mockSyncSvc = mocks.NewMockSyncServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSourceHandler(suite.mockSourceSvc, suite.mockSyncSvc)
	suite.actor = &auth.Actor{
		ID:       uuid.New(),
		Email:    "editor@newsroom.test",
		Role:     models.RoleEditor,
		TenantID: uuid.New(),
	}

	suite.router = gin.New()
	suite.router.Use(withActor(suite.actor))
	suite.router.POST("/sources", suite.handler.CreateSource)
	suite.router.GET("/sources", suite.handler.GetSources)
	suite.router.GET("/sources/:id", suite.handler.GetSource)
	suite.router.PUT("/sources/:id", suite.handler.UpdateSource)
	suite.router.DELETE("/sources/:id", suite.handler.DeleteSource)
	suite.router.POST("/sources/:id/sync", suite.handler.SyncSource)
}

func (suite *SourceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SourceHandlerTestSuite) TestCreateSource_Success() {
	resp := &service.SourceResponse{
		ID:       uuid.New(),
		TenantID: suite.actor.TenantID,
		Name:     "City Wire",
	}
	suite.mockSourceSvc.EXPECT().
		CreateSource(gomock.Any(), suite.actor, gomock.Any(), gomock.Any()).
		Return(resp, nil)

	body, _ := json.Marshal(gin.H{"name": "City Wire", "base_url": "https://citywire.example.com/rss"})
	req := httptest.NewRequest(http.MethodPost, "/sources", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *SourceHandlerTestSuite) TestGetSources_TypeFilterForwarded() {
	suite.mockSourceSvc.EXPECT().
		GetSources(suite.actor.TenantID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.ListSourcesRequest) (*service.SourceListResponse, error) {
			assert.Equal(suite.T(), "NEWS", *req.Type)
			assert.Nil(suite.T(), req.UpdateFrequency)
			return &service.SourceListResponse{Data: []service.SourceResponse{}, Meta: service.ListMeta{Page: 1, Limit: 20}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/sources?type=NEWS", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SourceHandlerTestSuite) TestUpdateSource_NameConflict() {
	id := uuid.New()
	suite.mockSourceSvc.EXPECT().
		UpdateSource(gomock.Any(), suite.actor, id, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrSourceExists)

	body, _ := json.Marshal(gin.H{"name": "Taken"})
	req := httptest.NewRequest(http.MethodPut, "/sources/"+id.String(), bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *SourceHandlerTestSuite) TestDeleteSource_NotFound() {
	id := uuid.New()
	suite.mockSourceSvc.EXPECT().
		DeleteSource(gomock.Any(), suite.actor, id, gomock.Any()).
		Return(apperrors.ErrSourceNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/sources/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SourceHandlerTestSuite) TestSyncSource_Success() {
	id := uuid.New()
	suite.mockSyncSvc.EXPECT().
		SyncSource(gomock.Any(), suite.actor, id, gomock.Any()).
		Return(&service.SyncResult{Success: true, ItemsFetched: 5, ItemsInserted: 3}, nil)

	req := httptest.NewRequest(http.MethodPost, "/sources/"+id.String()+"/sync", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.SyncResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.Success)
	assert.Equal(suite.T(), 5, got.ItemsFetched)
	assert.Equal(suite.T(), int64(3), got.ItemsInserted)
}

func (suite *SourceHandlerTestSuite) TestSyncSource_NotSyncable() {
	id := uuid.New()
	suite.mockSyncSvc.EXPECT().
		SyncSource(gomock.Any(), suite.actor, id, gomock.Any()).
		Return(nil, apperrors.ErrSourceNotSyncable)

	req := httptest.NewRequest(http.MethodPost, "/sources/"+id.String()+"/sync", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SourceHandlerTestSuite) TestSyncSource_FeedHostDown() {
	id := uuid.New()
	suite.mockSyncSvc.EXPECT().
		SyncSource(gomock.Any(), suite.actor, id, gomock.Any()).
		Return(nil, apperrors.NewExternalError("feed", "connection refused"))

	req := httptest.NewRequest(http.MethodPost, "/sources/"+id.String()+"/sync", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

func TestSourceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SourceHandlerTestSuite))
}

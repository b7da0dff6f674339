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

// TenantHandlerTestSuite defines the test suite for TenantHandler
type TenantHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTenantSvc *mocks.MockTenantServiceInterface
	handler       *handlers.TenantHandler
	actor         *auth.Actor
}

func (suite *TenantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenantSvc = mocks.NewMockTenantServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTenantHandler(suite.mockTenantSvc)
	suite.actor = &auth.Actor{
		ID:       uuid.New(),
		Email:    "admin@newsroom.test",
		Role:     models.RoleAdmin,
		TenantID: uuid.New(),
	}
}

func (suite *TenantHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TenantHandlerTestSuite) publicRouter() *gin.Engine {
	router := gin.New()
	router.POST("/tenants", suite.handler.CreateTenant)
	return router
}

func (suite *TenantHandlerTestSuite) authedRouter() *gin.Engine {
	router := gin.New()
	router.Use(withActor(suite.actor))
	router.GET("/settings", suite.handler.GetSettings)
	router.PUT("/settings", suite.handler.UpdateSettings)
	return router
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_Success() {
	resp := &service.TenantBootstrapResponse{
		Tenant: service.TenantResponse{ID: uuid.New(), Name: "Metro Daily", Slug: "metro-daily"},
		Admin:  service.UserResponse{ID: uuid.New(), Email: "chief@metro.test", Role: models.RoleAdmin},
	}
	suite.mockTenantSvc.EXPECT().
		CreateTenant(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.CreateTenantRequest, _ interface{}) (*service.TenantBootstrapResponse, error) {
			assert.Equal(suite.T(), "Metro Daily", req.Name)
			assert.Equal(suite.T(), "chief@metro.test", req.AdminEmail)
			return resp, nil
		})

	body, _ := json.Marshal(gin.H{
		"name":           "Metro Daily",
		"admin_email":    "chief@metro.test",
		"admin_name":     "Chief",
		"admin_password": "longenough",
	})
	req := httptest.NewRequest(http.MethodPost, "/tenants", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.publicRouter().ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.TenantBootstrapResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "metro-daily", got.Tenant.Slug)
	assert.Equal(suite.T(), models.RoleAdmin, got.Admin.Role)
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_SlugTaken() {
	suite.mockTenantSvc.EXPECT().
		CreateTenant(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrTenantSlugExists)

	body, _ := json.Marshal(gin.H{
		"name":           "Metro Daily",
		"admin_email":    "chief@metro.test",
		"admin_name":     "Chief",
		"admin_password": "longenough",
	})
	req := httptest.NewRequest(http.MethodPost, "/tenants", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.publicRouter().ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *TenantHandlerTestSuite) TestGetSettings_Success() {
	suite.mockTenantSvc.EXPECT().
		GetTenant(suite.actor.TenantID).
		Return(&service.TenantResponse{ID: suite.actor.TenantID, Name: "Metro Daily"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	w := httptest.NewRecorder()

	suite.authedRouter().ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TenantHandlerTestSuite) TestUpdateSettings_BrandingForwarded() {
	suite.mockTenantSvc.EXPECT().
		UpdateSettings(gomock.Any(), suite.actor, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ *auth.Actor, req *service.UpdateTenantSettingsRequest, _ interface{}) (*service.TenantResponse, error) {
			assert.JSONEq(suite.T(), `{"theme":"dark"}`, string(req.BrandingConfig))
			return &service.TenantResponse{ID: suite.actor.TenantID}, nil
		})

	body := []byte(`{"branding_config":{"theme":"dark"}}`)
	req := httptest.NewRequest(http.MethodPut, "/settings", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.authedRouter().ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestTenantHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}

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

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockUserSvc *mocks.MockUserServiceInterface
	handler     *handlers.UserHandler
	router      *gin.Engine
	actor       *auth.Actor
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserSvc = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockUserSvc)
	suite.actor = &auth.Actor{
		ID:       uuid.New(),
		Email:    "admin@newsroom.test",
		Role:     models.RoleAdmin,
		TenantID: uuid.New(),
	}

	suite.router = gin.New()
	suite.router.Use(withActor(suite.actor))
	suite.router.POST("/users", suite.handler.CreateUser)
	suite.router.GET("/users", suite.handler.GetUsers)
	suite.router.GET("/users/:id", suite.handler.GetUser)
	suite.router.PUT("/users/:id", suite.handler.UpdateUser)
	suite.router.DELETE("/users/:id", suite.handler.DeleteUser)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestCreateUser_Success() {
	resp := &service.UserResponse{
		ID:       uuid.New(),
		TenantID: suite.actor.TenantID,
		Email:    "reporter@newsroom.test",
		Name:     "Reporter",
		Role:     models.RoleViewer,
	}
	suite.mockUserSvc.EXPECT().
		CreateUser(gomock.Any(), suite.actor, gomock.Any(), gomock.Any()).
		Return(resp, nil)

	body, _ := json.Marshal(gin.H{
		"email":    "reporter@newsroom.test",
		"name":     "Reporter",
		"password": "longenough",
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got struct {
		Data service.UserResponse `json:"data"`
	}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.RoleViewer, got.Data.Role)
}

func (suite *UserHandlerTestSuite) TestCreateUser_DuplicateEmail() {
	suite.mockUserSvc.EXPECT().
		CreateUser(gomock.Any(), suite.actor, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrUserExists)

	body, _ := json.Marshal(gin.H{
		"email":    "taken@newsroom.test",
		"name":     "Dup",
		"password": "longenough",
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *UserHandlerTestSuite) TestGetUsers_PaginationForwarded() {
	suite.mockUserSvc.EXPECT().
		GetUsers(suite.actor.TenantID, 3, 5).
		Return(&service.UserListResponse{Data: []service.UserResponse{}, Meta: service.ListMeta{Page: 3, Limit: 5}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users?page=3&limit=5", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *UserHandlerTestSuite) TestGetUsers_NegativePage() {
	suite.mockUserSvc.EXPECT().
		GetUsers(suite.actor.TenantID, -1, 20).
		Return(nil, apperrors.ErrInvalidPaginationParams)

	req := httptest.NewRequest(http.MethodGet, "/users?page=-1", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteUser_Self() {
	suite.mockUserSvc.EXPECT().
		DeleteUser(gomock.Any(), suite.actor, suite.actor.ID, gomock.Any()).
		Return(apperrors.ErrSelfDelete)

	req := httptest.NewRequest(http.MethodDelete, "/users/"+suite.actor.ID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestUpdateUser_NotFound() {
	id := uuid.New()
	suite.mockUserSvc.EXPECT().
		UpdateUser(gomock.Any(), suite.actor, id, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrUserNotFound)

	body, _ := json.Marshal(gin.H{"name": "Renamed"})
	req := httptest.NewRequest(http.MethodPut, "/users/"+id.String(), bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

package service_test

import (
	"context"
	"testing"

	"newsroom-backend/internal/audit"
	"newsroom-backend/internal/auth"
	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/mocks"
	"newsroom-backend/internal/repository"
	"newsroom-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type SourceServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockSourceRepo *mocks.MockSourceRepositoryInterface
	mockRecorder   *mocks.MockRecorder
	sourceService  *service.SourceService
	tenantID       uuid.UUID
	editor         *auth.Actor
}

func (suite *SourceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSourceRepo = mocks.NewMockSourceRepositoryInterface(suite.ctrl)
	suite.mockRecorder = mocks.NewMockRecorder(suite.ctrl)
	suite.sourceService = service.NewSourceService(suite.mockSourceRepo, suite.mockRecorder, validator.New())
	suite.tenantID = uuid.New()
	suite.editor = &auth.Actor{
		ID:       uuid.New(),
		Email:    "editor@test.com",
		Role:     models.RoleEditor,
		TenantID: suite.tenantID,
	}
}

func (suite *SourceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SourceServiceTestSuite) TestCreateSourceDefaults() {
	req := &service.CreateSourceRequest{
		Name:    "Wire Service",
		BaseURL: "https://wire.test/rss",
	}

	suite.mockSourceRepo.EXPECT().GetByName(suite.tenantID, req.Name).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockSourceRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(source *models.NewsSource) error {
		suite.Equal(models.SourceTypeNews, source.Type)
		suite.Equal(models.FrequencyDaily, source.UpdateFrequency)
		source.ID = uuid.New()
		return nil
	}).Times(1)
	suite.mockRecorder.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry audit.Entry) {
		suite.Equal(models.ActionSourceCreate, entry.Action)
		suite.Equal("news_source", entry.ResourceType)
	}).Times(1)

	resp, err := suite.sourceService.CreateSource(context.Background(), suite.editor, req, audit.RequestMeta{})

	suite.NoError(err)
	suite.Equal(models.SourceTypeNews, resp.Type)
	suite.Equal(models.FrequencyDaily, resp.UpdateFrequency)
	suite.Nil(resp.LastFetchedAt)
}

func (suite *SourceServiceTestSuite) TestCreateSourceInvalidType() {
	sourceType := "PODCAST"
	req := &service.CreateSourceRequest{
		Name:    "Wire Service",
		BaseURL: "https://wire.test/rss",
		Type:    &sourceType,
	}

	resp, err := suite.sourceService.CreateSource(context.Background(), suite.editor, req, audit.RequestMeta{})

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *SourceServiceTestSuite) TestCreateSourceInvalidFrequency() {
	freq := "FORTNIGHTLY"
	req := &service.CreateSourceRequest{
		Name:            "Wire Service",
		BaseURL:         "https://wire.test/rss",
		UpdateFrequency: &freq,
	}

	resp, err := suite.sourceService.CreateSource(context.Background(), suite.editor, req, audit.RequestMeta{})

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *SourceServiceTestSuite) TestCreateSourceDuplicateName() {
	req := &service.CreateSourceRequest{
		Name:    "Wire Service",
		BaseURL: "https://wire.test/rss",
	}

	suite.mockSourceRepo.EXPECT().GetByName(suite.tenantID, req.Name).Return(&models.NewsSource{BaseModel: models.BaseModel{ID: uuid.New()}}, nil).Times(1)

	resp, err := suite.sourceService.CreateSource(context.Background(), suite.editor, req, audit.RequestMeta{})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrSourceExists)
}

func (suite *SourceServiceTestSuite) TestUpdateSourceRenameChecksDuplicates() {
	sourceID := uuid.New()
	name := "Renamed Wire"

	suite.mockSourceRepo.EXPECT().GetByID(suite.tenantID, sourceID).Return(&models.NewsSource{
		BaseModel: models.BaseModel{ID: sourceID},
		TenantID: suite.tenantID,
		Name:     "Wire Service",
		BaseURL:  "https://wire.test/rss",
		Type:     models.SourceTypeNews,
	}, nil).Times(1)
	suite.mockSourceRepo.EXPECT().GetByName(suite.tenantID, name).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockSourceRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockRecorder.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry audit.Entry) {
		suite.Equal(models.ActionSourceUpdate, entry.Action)
	}).Times(1)

	resp, err := suite.sourceService.UpdateSource(context.Background(), suite.editor, sourceID, &service.UpdateSourceRequest{Name: &name}, audit.RequestMeta{})

	suite.NoError(err)
	suite.Equal("Renamed Wire", resp.Name)
}

func (suite *SourceServiceTestSuite) TestUpdateSourceRenameConflict() {
	sourceID := uuid.New()
	name := "Taken Name"

	suite.mockSourceRepo.EXPECT().GetByID(suite.tenantID, sourceID).Return(&models.NewsSource{
		BaseModel: models.BaseModel{ID: sourceID},
		TenantID: suite.tenantID,
		Name:     "Wire Service",
	}, nil).Times(1)
	suite.mockSourceRepo.EXPECT().GetByName(suite.tenantID, name).Return(&models.NewsSource{BaseModel: models.BaseModel{ID: uuid.New()}}, nil).Times(1)

	resp, err := suite.sourceService.UpdateSource(context.Background(), suite.editor, sourceID, &service.UpdateSourceRequest{Name: &name}, audit.RequestMeta{})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrSourceExists)
}

func (suite *SourceServiceTestSuite) TestDeleteSourceNotFound() {
	sourceID := uuid.New()

	suite.mockSourceRepo.EXPECT().GetByID(suite.tenantID, sourceID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.sourceService.DeleteSource(context.Background(), suite.editor, sourceID, audit.RequestMeta{})

	suite.ErrorIs(err, apperrors.ErrSourceNotFound)
}

func (suite *SourceServiceTestSuite) TestDeleteSourceSuccess() {
	sourceID := uuid.New()

	suite.mockSourceRepo.EXPECT().GetByID(suite.tenantID, sourceID).Return(&models.NewsSource{
		BaseModel: models.BaseModel{ID: sourceID},
		TenantID: suite.tenantID,
		Name:     "Wire Service",
	}, nil).Times(1)
	suite.mockSourceRepo.EXPECT().Delete(suite.tenantID, sourceID).Return(nil).Times(1)
	suite.mockRecorder.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry audit.Entry) {
		suite.Equal(models.ActionSourceDelete, entry.Action)
		suite.NotNil(entry.OldValue)
	}).Times(1)

	err := suite.sourceService.DeleteSource(context.Background(), suite.editor, sourceID, audit.RequestMeta{})

	suite.NoError(err)
}

func (suite *SourceServiceTestSuite) TestGetSourcesTypeFilter() {
	sourceType := string(models.SourceTypeNews)

	suite.mockSourceRepo.EXPECT().GetAll(suite.tenantID, gomock.Any(), 20, 0).DoAndReturn(func(_ uuid.UUID, filter repository.SourceFilter, _, _ int) ([]models.NewsSource, int64, error) {
		suite.Require().NotNil(filter.Type)
		suite.Equal(models.SourceTypeNews, *filter.Type)
		return []models.NewsSource{}, 0, nil
	}).Times(1)

	resp, err := suite.sourceService.GetSources(suite.tenantID, &service.ListSourcesRequest{Type: &sourceType})

	suite.NoError(err)
	suite.Equal(int64(0), resp.Meta.Total)
}

func TestSourceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SourceServiceTestSuite))
}

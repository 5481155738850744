package service_test

import (
	"testing"

	"scheduler-backend/internal/database/models"
	apperrors "scheduler-backend/internal/errors"
	"scheduler-backend/internal/mocks"
	"scheduler-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ResourceServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockResourceRepositoryInterface
	mockSchoolRepo  *mocks.MockSchoolRepositoryInterface
	resourceService *service.ResourceService
}

func (suite *ResourceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockResourceRepositoryInterface(suite.ctrl)
	suite.mockSchoolRepo = mocks.NewMockSchoolRepositoryInterface(suite.ctrl)
	suite.resourceService = service.NewResourceService(suite.mockRepo, suite.mockSchoolRepo, validator.New())
}

func (suite *ResourceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ResourceServiceTestSuite) TestCreateResource_Success() {
	schoolID := uuid.New()
	suite.mockSchoolRepo.EXPECT().GetByID(schoolID).Return(&models.School{
		BaseModel: models.BaseModel{ID: schoolID},
	}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(resource *models.Resource) error {
		assert.Equal(suite.T(), schoolID, resource.SchoolID)
		assert.Equal(suite.T(), "Maria Ivanova", resource.Name)
		assert.True(suite.T(), resource.IsActive)
		resource.ID = uuid.New()
		return nil
	})

	resp, err := suite.resourceService.CreateResource(schoolID, &service.CreateResourceRequest{Name: "Maria Ivanova"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), schoolID, resp.SchoolID)
	assert.Equal(suite.T(), "Maria Ivanova", resp.Name)
}

func (suite *ResourceServiceTestSuite) TestCreateResource_SchoolNotFound() {
	schoolID := uuid.New()
	suite.mockSchoolRepo.EXPECT().GetByID(schoolID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.resourceService.CreateResource(schoolID, &service.CreateResourceRequest{Name: "Maria Ivanova"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSchoolNotFound)
}

func (suite *ResourceServiceTestSuite) TestGetResourceByID_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.resourceService.GetResourceByID(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrResourceNotFound)
}

func (suite *ResourceServiceTestSuite) TestGetResourcesBySchool_Success() {
	schoolID := uuid.New()
	suite.mockSchoolRepo.EXPECT().GetByID(schoolID).Return(&models.School{
		BaseModel: models.BaseModel{ID: schoolID},
	}, nil)
	suite.mockRepo.EXPECT().GetBySchoolID(schoolID).Return([]models.Resource{
		{BaseModel: models.BaseModel{ID: uuid.New()}, SchoolID: schoolID, Name: "Anna", IsActive: true},
		{BaseModel: models.BaseModel{ID: uuid.New()}, SchoolID: schoolID, Name: "Boris", IsActive: true},
	}, nil)

	resp, err := suite.resourceService.GetResourcesBySchool(schoolID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "Anna", resp[0].Name)
}

func TestResourceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceServiceTestSuite))
}

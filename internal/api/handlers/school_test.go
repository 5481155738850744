package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scheduler-backend/internal/api/handlers"
	apperrors "scheduler-backend/internal/errors"
	"scheduler-backend/internal/mocks"
	"scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SchoolHandlerTestSuite defines the test suite for SchoolHandler
type SchoolHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSchoolServiceInterface
	handler     *handlers.SchoolHandler
	router      *gin.Engine
}

func (suite *SchoolHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSchoolServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSchoolHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.POST("/schools", suite.handler.CreateSchool)
	suite.router.GET("/schools", suite.handler.ListSchools)
	suite.router.GET("/schools/:id", suite.handler.GetSchool)
}

func (suite *SchoolHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SchoolHandlerTestSuite) TestCreateSchool_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().CreateSchool(gomock.Any()).DoAndReturn(func(req *service.CreateSchoolRequest) (*service.SchoolResponse, error) {
		assert.Equal(suite.T(), "Lyceum 14", req.Name)
		assert.Equal(suite.T(), "Europe/Moscow", req.TimeZone)
		return &service.SchoolResponse{ID: id, Name: req.Name, TimeZone: req.TimeZone}, nil
	})

	body, _ := json.Marshal(service.CreateSchoolRequest{Name: "Lyceum 14", TimeZone: "Europe/Moscow"})
	req := httptest.NewRequest(http.MethodPost, "/schools", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.SchoolResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), id, got.ID)
}

func (suite *SchoolHandlerTestSuite) TestCreateSchool_UnknownTimeZone() {
	suite.mockService.EXPECT().CreateSchool(gomock.Any()).Return(nil, apperrors.ErrUnknownTimeZone)

	body, _ := json.Marshal(service.CreateSchoolRequest{Name: "Lyceum 14", TimeZone: "Nowhere/Nothing"})
	req := httptest.NewRequest(http.MethodPost, "/schools", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SchoolHandlerTestSuite) TestCreateSchool_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/schools", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SchoolHandlerTestSuite) TestGetSchool_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetSchoolByID(id).Return(nil, apperrors.ErrSchoolNotFound)

	req := httptest.NewRequest(http.MethodGet, "/schools/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SchoolHandlerTestSuite) TestGetSchool_BadUUID() {
	req := httptest.NewRequest(http.MethodGet, "/schools/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SchoolHandlerTestSuite) TestListSchools_DefaultPagination() {
	suite.mockService.EXPECT().GetAllSchools(1, 100).Return(&service.SchoolListResponse{
		Schools:  []service.SchoolResponse{},
		Page:     1,
		PageSize: 100,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/schools", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestSchoolHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SchoolHandlerTestSuite))
}

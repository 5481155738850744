package service_test

import (
	"encoding/json"
	"testing"
	"time"

	"scheduler-backend/internal/calendar"
	"scheduler-backend/internal/database/models"
	apperrors "scheduler-backend/internal/errors"
	"scheduler-backend/internal/mocks"
	"scheduler-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CalendarServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockSchoolRepo     *mocks.MockSchoolRepositoryInterface
	mockResourceRepo   *mocks.MockResourceRepositoryInterface
	mockVersionRepo    *mocks.MockActivityVersionRepositoryInterface
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	calendarService    *service.CalendarService

	schoolID   uuid.UUID
	activityID uuid.UUID
}

func (suite *CalendarServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSchoolRepo = mocks.NewMockSchoolRepositoryInterface(suite.ctrl)
	suite.mockResourceRepo = mocks.NewMockResourceRepositoryInterface(suite.ctrl)
	suite.mockVersionRepo = mocks.NewMockActivityVersionRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.calendarService = service.NewCalendarService(suite.mockSchoolRepo, suite.mockResourceRepo, suite.mockVersionRepo, suite.mockAssignmentRepo)

	suite.schoolID = uuid.New()
	suite.activityID = uuid.New()
}

func (suite *CalendarServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CalendarServiceTestSuite) school() *models.School {
	return &models.School{
		BaseModel: models.BaseModel{ID: suite.schoolID},
		Name:      "Lyceum 14",
		TimeZone:  "Europe/Moscow",
	}
}

func (suite *CalendarServiceTestSuite) dailyVersionRow(effectiveFrom time.Time) models.ActivityVersion {
	raw, err := json.Marshal(calendar.NewDailyPeriodicity())
	require.NoError(suite.T(), err)
	return models.ActivityVersion{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		ActivityID:        suite.activityID,
		SchoolID:          suite.schoolID,
		Name:              "Mathematics",
		Periodicity:       raw,
		TimeStartsAt:      720,
		TimeDuration:      60,
		RequiredResources: 1,
		EffectiveFrom:     effectiveFrom,
	}
}

func (suite *CalendarServiceTestSuite) TestGetSchoolCalendar_ZeroDays() {
	resp, err := suite.calendarService.GetSchoolCalendar(suite.schoolID, "2023-01-23", 0)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidWindow)
}

func (suite *CalendarServiceTestSuite) TestGetSchoolCalendar_WindowOverWeek() {
	resp, err := suite.calendarService.GetSchoolCalendar(suite.schoolID, "2023-01-23", 8)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWindowTooLong)
}

func (suite *CalendarServiceTestSuite) TestGetSchoolCalendar_SchoolNotFound() {
	suite.mockSchoolRepo.EXPECT().GetByID(suite.schoolID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.calendarService.GetSchoolCalendar(suite.schoolID, "2023-01-23", 1)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSchoolNotFound)
}

func (suite *CalendarServiceTestSuite) TestGetSchoolCalendar_BadDateFormat() {
	suite.mockSchoolRepo.EXPECT().GetByID(suite.schoolID).Return(suite.school(), nil)

	resp, err := suite.calendarService.GetSchoolCalendar(suite.schoolID, "23.01.2023", 1)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CalendarServiceTestSuite) TestGetSchoolCalendar_DailyActivityWithoutRecords() {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(suite.T(), err)

	effectiveFrom := time.Date(2023, 1, 21, 0, 0, 0, 0, moscow)
	suite.mockSchoolRepo.EXPECT().GetByID(suite.schoolID).Return(suite.school(), nil)
	suite.mockVersionRepo.EXPECT().GetBySchoolID(suite.schoolID).
		Return([]models.ActivityVersion{suite.dailyVersionRow(effectiveFrom)}, nil)
	suite.mockAssignmentRepo.EXPECT().
		GetByActivitiesInRange([]uuid.UUID{suite.activityID}, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	suite.mockResourceRepo.EXPECT().GetBySchoolID(suite.schoolID).Return(nil, nil)

	resp, err := suite.calendarService.GetSchoolCalendar(suite.schoolID, "2023-01-23", 2)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Events, 2)
	first := resp.Events[0]
	assert.Equal(suite.T(), suite.activityID, first.ActivityID)
	assert.Equal(suite.T(), "Mathematics", first.Name)
	assert.True(suite.T(), first.StartsAt.Equal(time.Date(2023, 1, 23, 12, 0, 0, 0, moscow)))
	assert.Equal(suite.T(), 60, first.Duration)
	assert.Equal(suite.T(), 1, first.RequiredResources)
	assert.Equal(suite.T(), 0, first.AssignedResources)
	assert.Nil(suite.T(), first.ResourceID)
	assert.True(suite.T(), resp.Events[1].StartsAt.Equal(time.Date(2023, 1, 24, 12, 0, 0, 0, moscow)))
}

func (suite *CalendarServiceTestSuite) TestGetSchoolCalendar_MergesAttendanceRecord() {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(suite.T(), err)
	resourceID := uuid.New()

	effectiveFrom := time.Date(2023, 1, 21, 0, 0, 0, 0, moscow)
	suite.mockSchoolRepo.EXPECT().GetByID(suite.schoolID).Return(suite.school(), nil)
	suite.mockVersionRepo.EXPECT().GetBySchoolID(suite.schoolID).
		Return([]models.ActivityVersion{suite.dailyVersionRow(effectiveFrom)}, nil)

	startsAt := 600
	duration := 90
	record := models.Assignment{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		ActivityID:   suite.activityID,
		SchoolID:     suite.schoolID,
		Date:         time.Date(2023, 1, 23, 0, 0, 0, 0, time.UTC),
		TimeStartsAt: &startsAt,
		TimeDuration: &duration,
		AssignedResources: []models.AssignedResource{
			{ResourceID: resourceID},
		},
	}
	suite.mockAssignmentRepo.EXPECT().
		GetByActivitiesInRange([]uuid.UUID{suite.activityID}, gomock.Any(), gomock.Any()).
		Return([]models.Assignment{record}, nil)
	suite.mockResourceRepo.EXPECT().GetBySchoolID(suite.schoolID).Return([]models.Resource{
		{BaseModel: models.BaseModel{ID: resourceID}, SchoolID: suite.schoolID, Name: "Anna Petrova", IsActive: true},
	}, nil)

	resp, err := suite.calendarService.GetSchoolCalendar(suite.schoolID, "2023-01-23", 1)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Events, 1)
	event := resp.Events[0]
	// the record overrides the nominal noon interval and fills the only slot
	assert.True(suite.T(), event.StartsAt.Equal(time.Date(2023, 1, 23, 10, 0, 0, 0, moscow)))
	assert.Equal(suite.T(), 90, event.Duration)
	assert.Equal(suite.T(), 1, event.AssignedResources)
	require.NotNil(suite.T(), event.ResourceID)
	assert.Equal(suite.T(), resourceID, *event.ResourceID)

	// the resource directory rides along so the assigned ID can be rendered
	require.Len(suite.T(), resp.Resources, 1)
	assert.Equal(suite.T(), resourceID, resp.Resources[0].ID)
	assert.Equal(suite.T(), "Anna Petrova", resp.Resources[0].Name)
}

func (suite *CalendarServiceTestSuite) TestGetActivitiesCalendar_InvertedWindow() {
	from := time.Date(2023, 1, 23, 0, 0, 0, 0, time.UTC)

	resp, err := suite.calendarService.GetActivitiesCalendar([]uuid.UUID{suite.activityID}, from, from)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidWindow)
}

func (suite *CalendarServiceTestSuite) TestGetActivitiesCalendar_WindowOverWeek() {
	from := time.Date(2023, 1, 23, 0, 0, 0, 0, time.UTC)

	resp, err := suite.calendarService.GetActivitiesCalendar([]uuid.UUID{suite.activityID}, from, from.AddDate(0, 0, 8))

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWindowTooLong)
}

func (suite *CalendarServiceTestSuite) TestGetActivitiesCalendar_MissingHistory() {
	from := time.Date(2023, 1, 23, 0, 0, 0, 0, time.UTC)
	suite.mockVersionRepo.EXPECT().GetByActivityID(suite.activityID).Return(nil, nil)

	resp, err := suite.calendarService.GetActivitiesCalendar([]uuid.UUID{suite.activityID}, from, from.AddDate(0, 0, 1))

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *CalendarServiceTestSuite) TestGetActivitiesCalendar_Success() {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(suite.T(), err)

	effectiveFrom := time.Date(2023, 1, 21, 0, 0, 0, 0, moscow)
	suite.mockVersionRepo.EXPECT().GetByActivityID(suite.activityID).
		Return([]models.ActivityVersion{suite.dailyVersionRow(effectiveFrom)}, nil)
	suite.mockSchoolRepo.EXPECT().GetByID(suite.schoolID).Return(suite.school(), nil)
	suite.mockAssignmentRepo.EXPECT().
		GetByActivitiesInRange([]uuid.UUID{suite.activityID}, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	from := time.Date(2023, 1, 23, 0, 0, 0, 0, moscow)
	resp, err := suite.calendarService.GetActivitiesCalendar([]uuid.UUID{suite.activityID}, from, from.AddDate(0, 0, 1))

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Events, 1)
	assert.True(suite.T(), resp.Events[0].StartsAt.Equal(time.Date(2023, 1, 23, 12, 0, 0, 0, moscow)))
}

func TestCalendarServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarServiceTestSuite))
}

//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"scheduler-backend/internal/database/models"
	"scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ActivityVersionRepositoryTestSuite tests the ActivityVersionRepository
type ActivityVersionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ActivityVersionRepository
	schoolRepo    *SchoolRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ActivityVersionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewActivityVersionRepository(suite.baseTestSuite.DB)
	suite.schoolRepo = NewSchoolRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ActivityVersionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ActivityVersionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ActivityVersionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ActivityVersionRepositoryTestSuite) createSchool() *models.School {
	school := suite.factories.School.Create()
	suite.NoError(suite.schoolRepo.Create(school))
	return school
}

// appendVersion persists one version of the given activity effective at t
func (suite *ActivityVersionRepositoryTestSuite) appendVersion(schoolID, activityID uuid.UUID, effectiveFrom time.Time) *models.ActivityVersion {
	version := suite.factories.ActivityVersion.WithSchool(schoolID)
	version.ActivityID = activityID
	version.EffectiveFrom = effectiveFrom
	suite.NoError(suite.repo.Create(version))
	return version
}

// TestCreate tests appending a version row
func (suite *ActivityVersionRepositoryTestSuite) TestCreate() {
	school := suite.createSchool()
	version := suite.factories.ActivityVersion.WithSchool(school.ID)

	err := suite.repo.Create(version)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, version.ID)
}

// TestGetByActivityID tests that history comes back oldest-first
func (suite *ActivityVersionRepositoryTestSuite) TestGetByActivityID() {
	school := suite.createSchool()
	activityID := uuid.New()

	jan := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	// insert out of order on purpose
	suite.appendVersion(school.ID, activityID, jan.AddDate(0, 2, 0))
	suite.appendVersion(school.ID, activityID, jan)
	suite.appendVersion(school.ID, activityID, jan.AddDate(0, 1, 0))

	versions, err := suite.repo.GetByActivityID(activityID)

	suite.NoError(err)
	suite.Len(versions, 3)
	suite.True(versions[0].EffectiveFrom.Before(versions[1].EffectiveFrom))
	suite.True(versions[1].EffectiveFrom.Before(versions[2].EffectiveFrom))
}

// TestGetByActivityIDEmpty tests an activity with no history
func (suite *ActivityVersionRepositoryTestSuite) TestGetByActivityIDEmpty() {
	versions, err := suite.repo.GetByActivityID(uuid.New())

	suite.NoError(err)
	suite.Empty(versions)
}

// TestGetLatestByActivityID tests resolving the newest version
func (suite *ActivityVersionRepositoryTestSuite) TestGetLatestByActivityID() {
	school := suite.createSchool()
	activityID := uuid.New()

	jan := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.appendVersion(school.ID, activityID, jan)
	latest := suite.appendVersion(school.ID, activityID, jan.AddDate(0, 3, 0))

	retrieved, err := suite.repo.GetLatestByActivityID(activityID)

	suite.NoError(err)
	suite.Equal(latest.ID, retrieved.ID)
}

// TestGetLatestByActivityIDNotFound tests an unknown activity
func (suite *ActivityVersionRepositoryTestSuite) TestGetLatestByActivityIDNotFound() {
	version, err := suite.repo.GetLatestByActivityID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(version)
}

// TestGetBySchoolID tests that rows of one activity come back adjacent,
// oldest-first, across the whole school
func (suite *ActivityVersionRepositoryTestSuite) TestGetBySchoolID() {
	school := suite.createSchool()
	actA := uuid.New()
	actB := uuid.New()

	jan := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.appendVersion(school.ID, actA, jan.AddDate(0, 1, 0))
	suite.appendVersion(school.ID, actB, jan)
	suite.appendVersion(school.ID, actA, jan)

	versions, err := suite.repo.GetBySchoolID(school.ID)

	suite.NoError(err)
	suite.Len(versions, 3)
	for i := 1; i < len(versions); i++ {
		if versions[i].ActivityID == versions[i-1].ActivityID {
			suite.True(!versions[i].EffectiveFrom.Before(versions[i-1].EffectiveFrom))
		}
	}
	// both rows of the same activity are adjacent
	adjacency := map[uuid.UUID]int{}
	for i, v := range versions {
		if last, ok := adjacency[v.ActivityID]; ok {
			suite.Equal(last+1, i)
		}
		adjacency[v.ActivityID] = i
	}
}

func TestActivityVersionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityVersionRepositoryTestSuite))
}

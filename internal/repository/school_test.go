//go:build integration
// +build integration

package repository

import (
	"testing"

	"scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SchoolRepositoryTestSuite tests the SchoolRepository
type SchoolRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SchoolRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *SchoolRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewSchoolRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SchoolRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SchoolRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SchoolRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new school
func (suite *SchoolRepositoryTestSuite) TestCreate() {
	school := suite.factories.School.Create()

	err := suite.repo.Create(school)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, school.ID)
	suite.NotZero(school.CreatedAt)
	suite.NotZero(school.UpdatedAt)
}

// TestGetByID tests retrieving a school by ID
func (suite *SchoolRepositoryTestSuite) TestGetByID() {
	school := suite.factories.School.WithTimeZone("America/New_York")
	err := suite.repo.Create(school)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(school.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(school.ID, retrieved.ID)
	suite.Equal(school.Name, retrieved.Name)
	suite.Equal("America/New_York", retrieved.TimeZone)
}

// TestGetByIDNotFound tests retrieving a non-existent school
func (suite *SchoolRepositoryTestSuite) TestGetByIDNotFound() {
	nonExistentID := uuid.New()

	school, err := suite.repo.GetByID(nonExistentID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(school)
}

// TestGetAll tests listing schools with pagination
func (suite *SchoolRepositoryTestSuite) TestGetAll() {
	for _, name := range []string{"First School", "Second School", "Third School"} {
		err := suite.repo.Create(suite.factories.School.WithName(name))
		suite.NoError(err)
	}

	schools, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(schools, 2)

	rest, total, err := suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(rest, 1)
}

// TestGetAllEmpty tests listing when no schools exist
func (suite *SchoolRepositoryTestSuite) TestGetAllEmpty() {
	schools, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(schools)
}

func TestSchoolRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SchoolRepositoryTestSuite))
}

//go:build integration
// +build integration

package repository

import (
	"testing"

	"scheduler-backend/internal/database/models"
	"scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ResourceRepositoryTestSuite tests the ResourceRepository
type ResourceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ResourceRepository
	schoolRepo    *SchoolRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ResourceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewResourceRepository(suite.baseTestSuite.DB)
	suite.schoolRepo = NewSchoolRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ResourceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ResourceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ResourceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createSchool persists a school for resources to hang off
func (suite *ResourceRepositoryTestSuite) createSchool() *models.School {
	school := suite.factories.School.Create()
	suite.NoError(suite.schoolRepo.Create(school))
	return school
}

// TestCreate tests creating a new resource
func (suite *ResourceRepositoryTestSuite) TestCreate() {
	school := suite.createSchool()
	resource := suite.factories.Resource.WithSchool(school.ID)

	err := suite.repo.Create(resource)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, resource.ID)
	suite.True(resource.IsActive)
}

// TestGetByID tests retrieving a resource by ID
func (suite *ResourceRepositoryTestSuite) TestGetByID() {
	school := suite.createSchool()
	resource := suite.factories.Resource.WithSchool(school.ID)
	suite.NoError(suite.repo.Create(resource))

	retrieved, err := suite.repo.GetByID(resource.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(resource.ID, retrieved.ID)
	suite.Equal(school.ID, retrieved.SchoolID)
}

// TestGetByIDNotFound tests retrieving a non-existent resource
func (suite *ResourceRepositoryTestSuite) TestGetByIDNotFound() {
	resource, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(resource)
}

// TestGetBySchoolID tests listing a school's resources ordered by name
func (suite *ResourceRepositoryTestSuite) TestGetBySchoolID() {
	school := suite.createSchool()
	other := suite.createSchool()

	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		r := suite.factories.Resource.WithSchool(school.ID)
		r.Name = name
		suite.NoError(suite.repo.Create(r))
	}
	// resource in another school must not leak into the listing
	suite.NoError(suite.repo.Create(suite.factories.Resource.WithSchool(other.ID)))

	resources, err := suite.repo.GetBySchoolID(school.ID)

	suite.NoError(err)
	suite.Len(resources, 3)
	suite.Equal("Alice", resources[0].Name)
	suite.Equal("Bob", resources[1].Name)
	suite.Equal("Charlie", resources[2].Name)
}

// TestGetByIDs tests fetching a set of resources
func (suite *ResourceRepositoryTestSuite) TestGetByIDs() {
	school := suite.createSchool()
	r1 := suite.factories.Resource.WithSchool(school.ID)
	r2 := suite.factories.Resource.WithSchool(school.ID)
	suite.NoError(suite.repo.Create(r1))
	suite.NoError(suite.repo.Create(r2))

	resources, err := suite.repo.GetByIDs([]uuid.UUID{r1.ID, r2.ID, uuid.New()})

	suite.NoError(err)
	suite.Len(resources, 2)
}

// TestGetByIDsEmpty tests fetching with an empty ID set
func (suite *ResourceRepositoryTestSuite) TestGetByIDsEmpty() {
	resources, err := suite.repo.GetByIDs(nil)

	suite.NoError(err)
	suite.Empty(resources)
}

func TestResourceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceRepositoryTestSuite))
}

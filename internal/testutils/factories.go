package testutils

import (
	"encoding/json"
	"time"

	"scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// SchoolFactory provides methods to create test School data
type SchoolFactory struct{}

// NewSchoolFactory creates a new SchoolFactory
func NewSchoolFactory() *SchoolFactory {
	return &SchoolFactory{}
}

// Create creates a test School with default values
func (f *SchoolFactory) Create() *models.School {
	return &models.School{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test School",
		TimeZone: "Europe/Moscow",
	}
}

// WithName sets a custom name for the school
func (f *SchoolFactory) WithName(name string) *models.School {
	school := f.Create()
	school.Name = name
	return school
}

// WithTimeZone sets a custom IANA time zone for the school
func (f *SchoolFactory) WithTimeZone(tz string) *models.School {
	school := f.Create()
	school.TimeZone = tz
	return school
}

// ResourceFactory provides methods to create test Resource data
type ResourceFactory struct{}

// NewResourceFactory creates a new ResourceFactory
func NewResourceFactory() *ResourceFactory {
	return &ResourceFactory{}
}

// Create creates a test Resource with default values
func (f *ResourceFactory) Create() *models.Resource {
	return &models.Resource{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SchoolID: uuid.New(),
		Name:     "Test Teacher",
		IsActive: true,
	}
}

// WithSchool sets the school ID for the resource
func (f *ResourceFactory) WithSchool(schoolID uuid.UUID) *models.Resource {
	resource := f.Create()
	resource.SchoolID = schoolID
	return resource
}

// WithName sets a custom name for the resource
func (f *ResourceFactory) WithName(name string) *models.Resource {
	resource := f.Create()
	resource.Name = name
	return resource
}

// ActivityVersionFactory provides methods to create test ActivityVersion data
type ActivityVersionFactory struct{}

// NewActivityVersionFactory creates a new ActivityVersionFactory
func NewActivityVersionFactory() *ActivityVersionFactory {
	return &ActivityVersionFactory{}
}

// Create creates a test ActivityVersion with default values: a daily
// activity at 12:00 for 60 minutes, effective from 2023-01-01.
func (f *ActivityVersionFactory) Create() *models.ActivityVersion {
	return &models.ActivityVersion{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ActivityID:        uuid.New(),
		SchoolID:          uuid.New(),
		Name:              "Mathematics",
		Periodicity:       json.RawMessage(`{"type": "daily"}`),
		TimeStartsAt:      720,
		TimeDuration:      60,
		RequiredResources: 1,
		EffectiveFrom:     time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithSchool sets the school ID for the version
func (f *ActivityVersionFactory) WithSchool(schoolID uuid.UUID) *models.ActivityVersion {
	version := f.Create()
	version.SchoolID = schoolID
	return version
}

// WithActivity sets the activity ID for the version
func (f *ActivityVersionFactory) WithActivity(activityID uuid.UUID) *models.ActivityVersion {
	version := f.Create()
	version.ActivityID = activityID
	return version
}

// WithWeeklyPeriodicity makes the version recur weekly on the given
// weekdays (0 = Monday .. 6 = Sunday)
func (f *ActivityVersionFactory) WithWeeklyPeriodicity(days ...int) *models.ActivityVersion {
	version := f.Create()
	raw, _ := json.Marshal(map[string]interface{}{"type": "weekly", "days": days})
	version.Periodicity = raw
	return version
}

// WithEffectiveFrom sets the instant the version takes effect
func (f *ActivityVersionFactory) WithEffectiveFrom(t time.Time) *models.ActivityVersion {
	version := f.Create()
	version.EffectiveFrom = t
	return version
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test Assignment with default values on 2023-01-23
func (f *AssignmentFactory) Create() *models.Assignment {
	return &models.Assignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ActivityID: uuid.New(),
		SchoolID:   uuid.New(),
		Date:       time.Date(2023, 1, 23, 0, 0, 0, 0, time.UTC),
	}
}

// WithActivity sets the activity ID for the assignment
func (f *AssignmentFactory) WithActivity(activityID uuid.UUID) *models.Assignment {
	assignment := f.Create()
	assignment.ActivityID = activityID
	return assignment
}

// WithDate sets the local calendar date for the assignment
func (f *AssignmentFactory) WithDate(date time.Time) *models.Assignment {
	assignment := f.Create()
	assignment.Date = date
	return assignment
}

// WithTimeOverride sets an overriding time interval for the date
func (f *AssignmentFactory) WithTimeOverride(startsAt, duration int) *models.Assignment {
	assignment := f.Create()
	assignment.TimeStartsAt = &startsAt
	assignment.TimeDuration = &duration
	return assignment
}

// WithResources attaches assigned resources to the assignment
func (f *AssignmentFactory) WithResources(resourceIDs ...uuid.UUID) *models.Assignment {
	assignment := f.Create()
	for _, rid := range resourceIDs {
		assignment.AssignedResources = append(assignment.AssignedResources, models.AssignedResource{
			BaseModel:    models.BaseModel{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
			AssignmentID: assignment.ID,
			ResourceID:   rid,
			AssignedAt:   time.Now().UTC(),
		})
	}
	return assignment
}

// FactorySet provides access to all factories
type FactorySet struct {
	School          *SchoolFactory
	Resource        *ResourceFactory
	ActivityVersion *ActivityVersionFactory
	Assignment      *AssignmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		School:          NewSchoolFactory(),
		Resource:        NewResourceFactory(),
		ActivityVersion: NewActivityVersionFactory(),
		Assignment:      NewAssignmentFactory(),
	}
}

// CreateSchoolHierarchy creates a school with one resource and one daily
// activity wired to it, ready to persist in integration tests.
func (fs *FactorySet) CreateSchoolHierarchy() (*models.School, *models.Resource, *models.ActivityVersion) {
	school := fs.School.Create()
	resource := fs.Resource.WithSchool(school.ID)
	version := fs.ActivityVersion.WithSchool(school.ID)
	return school, resource, version
}

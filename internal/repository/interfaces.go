package repository

import (
	"time"

	"scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SchoolRepositoryInterface defines the interface for school repository operations
type SchoolRepositoryInterface interface {
	Create(school *models.School) error
	GetByID(id uuid.UUID) (*models.School, error)
	GetAll(limit, offset int) ([]models.School, int64, error)
}

// ResourceRepositoryInterface defines the interface for resource repository operations
type ResourceRepositoryInterface interface {
	Create(resource *models.Resource) error
	GetByID(id uuid.UUID) (*models.Resource, error)
	GetBySchoolID(schoolID uuid.UUID) ([]models.Resource, error)
	GetByIDs(ids []uuid.UUID) ([]models.Resource, error)
}

// ActivityVersionRepositoryInterface defines the interface for the version store
type ActivityVersionRepositoryInterface interface {
	Create(version *models.ActivityVersion) error
	GetByActivityID(activityID uuid.UUID) ([]models.ActivityVersion, error)
	GetLatestByActivityID(activityID uuid.UUID) (*models.ActivityVersion, error)
	GetBySchoolID(schoolID uuid.UUID) ([]models.ActivityVersion, error)
}

// AssignmentRepositoryInterface defines the interface for attendance record operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.Assignment) error
	GetByActivityAndDate(activityID uuid.UUID, date time.Time) (*models.Assignment, error)
	GetByActivitiesInRange(activityIDs []uuid.UUID, from, to time.Time) ([]models.Assignment, error)
	Replace(assignment *models.Assignment, resources []models.AssignedResource) error
}

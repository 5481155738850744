package service

import (
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SchoolServiceInterface defines the interface for school service
type SchoolServiceInterface interface {
	CreateSchool(req *CreateSchoolRequest) (*SchoolResponse, error)
	GetSchoolByID(id uuid.UUID) (*SchoolResponse, error)
	GetAllSchools(page, pageSize int) (*SchoolListResponse, error)
}

// ResourceServiceInterface defines the interface for resource service
type ResourceServiceInterface interface {
	CreateResource(schoolID uuid.UUID, req *CreateResourceRequest) (*ResourceResponse, error)
	GetResourceByID(id uuid.UUID) (*ResourceResponse, error)
	GetResourcesBySchool(schoolID uuid.UUID) ([]ResourceResponse, error)
}

// ActivityServiceInterface defines the interface for activity service
type ActivityServiceInterface interface {
	CreateActivity(schoolID uuid.UUID, req *CreateActivityRequest) (*ActivityVersionResponse, error)
	UpdateActivity(activityID uuid.UUID, req *UpdateActivityRequest) (*ActivityVersionResponse, error)
	GetActivity(activityID uuid.UUID) (*ActivityVersionResponse, error)
	GetActivityVersions(activityID uuid.UUID) (*ActivityVersionListResponse, error)
}

// AssignmentServiceInterface defines the interface for assignment service
type AssignmentServiceInterface interface {
	SetAssignment(activityID uuid.UUID, req *SetAssignmentRequest) (*AssignmentResponse, error)
	GetAssignment(activityID uuid.UUID, date string) (*AssignmentResponse, error)
}

// CalendarServiceInterface defines the interface for calendar service
type CalendarServiceInterface interface {
	GetSchoolCalendar(schoolID uuid.UUID, startDate string, days int) (*CalendarResponse, error)
	GetActivitiesCalendar(activityIDs []uuid.UUID, from, to time.Time) (*CalendarResponse, error)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is the attendance record for one activity on one local date:
// who is assigned, and optionally an override of the activity's nominal
// time interval for just that date. At most one record exists per
// (activity_id, date) pair.
type Assignment struct {
	BaseModel
	ActivityID   uuid.UUID `json:"activity_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_activity_date,priority:1" validate:"required"`
	SchoolID     uuid.UUID `json:"school_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date         time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_assignments_activity_date,priority:2" validate:"required"`
	TimeStartsAt *int      `json:"time_starts_at,omitempty"`
	TimeDuration *int      `json:"time_duration,omitempty"`

	School            School             `json:"school,omitempty" gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE"`
	AssignedResources []AssignedResource `json:"assigned_resources,omitempty" gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}

// AssignedResource links one resource to an assignment record.
type AssignedResource struct {
	BaseModel
	AssignmentID uuid.UUID `json:"assignment_id" gorm:"type:uuid;not null;uniqueIndex:idx_assigned_resources_pair,priority:1" validate:"required"`
	ResourceID   uuid.UUID `json:"resource_id" gorm:"type:uuid;not null;uniqueIndex:idx_assigned_resources_pair,priority:2" validate:"required"`
	AssignedAt   time.Time `json:"assigned_at" gorm:"not null"`

	Resource Resource `json:"resource,omitempty" gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AssignedResource
func (AssignedResource) TableName() string {
	return "assigned_resources"
}

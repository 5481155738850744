package models

import "github.com/google/uuid"

// Resource is an assignable person: a teacher in a school, an employee in a
// service office.
type Resource struct {
	BaseModel
	SchoolID uuid.UUID `json:"school_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name     string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	IsActive bool      `json:"is_active" gorm:"default:true"`

	School School `json:"school,omitempty" gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Resource
func (Resource) TableName() string {
	return "resources"
}

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ActivityVersion is one immutable snapshot of a schedulable activity
// (a school subject, a recurring service visit). Editing an activity never
// updates a row: it appends a new version with a later effective_from, so
// past calendar queries keep resolving against the rule that was in effect
// at the time. Rows are never deleted.
type ActivityVersion struct {
	BaseModel
	ActivityID        uuid.UUID       `json:"activity_id" gorm:"type:uuid;not null;index:idx_activity_versions_activity,priority:1" validate:"required"`
	SchoolID          uuid.UUID       `json:"school_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name              string          `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Periodicity       json.RawMessage `json:"periodicity" gorm:"type:jsonb;not null" validate:"required"`
	TimeStartsAt      int             `json:"time_starts_at" gorm:"not null" validate:"min=0,max=1439"`
	TimeDuration      int             `json:"time_duration" gorm:"not null" validate:"required,min=1"`
	RequiredResources int             `json:"required_resources" gorm:"not null" validate:"min=0"`
	EffectiveFrom     time.Time       `json:"effective_from" gorm:"not null;index:idx_activity_versions_activity,priority:2"`

	School School `json:"school,omitempty" gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ActivityVersion
func (ActivityVersion) TableName() string {
	return "activity_versions"
}

package calendar

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "scheduler-backend/internal/errors"
)

// Date is a local calendar date. It deliberately carries no time zone: the
// same Date means different instants in different zones, and combining the
// two is always explicit via At.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extracts the calendar date from t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// At converts the date plus minutes-from-midnight into an absolute instant
// in the given location.
func (d Date) At(minutes int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, minutes, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// TimeInterval is a time-of-day slot: minutes from local midnight plus a
// duration in minutes. It is not an absolute instant until combined with a
// Date and a location.
type TimeInterval struct {
	StartsAt int `json:"startsAt"`
	Duration int `json:"duration"`
}

// Validate checks that the interval starts within the day and has a
// positive duration.
func (ti TimeInterval) Validate() error {
	if ti.StartsAt < 0 || ti.StartsAt > 1439 {
		return apperrors.ErrInvalidTimeInterval
	}
	if ti.Duration <= 0 {
		return apperrors.ErrInvalidTimeInterval
	}
	return nil
}

// Version is one immutable snapshot of a schedulable activity. Versions for
// the same activity are totally ordered by EffectiveFrom; each one is valid
// from its EffectiveFrom up to (exclusive) the next version's EffectiveFrom,
// or open-ended if it is the latest.
type Version struct {
	ActivityID        uuid.UUID
	Name              string
	Periodicity       Periodicity
	Time              TimeInterval
	RequiredResources int
	EffectiveFrom     time.Time
	Location          *time.Location
}

// Occurrence is a resolved calendar instance of one activity version on one
// local date. Occurrences are computed on demand and never persisted.
type Occurrence struct {
	ActivityID        uuid.UUID
	Name              string
	Date              Date
	Time              TimeInterval
	RequiredResources int
	Location          *time.Location
}

// Key identifies the assignment record for one activity on one local date.
// A structured pair rather than a derived string, so date formatting can
// never cause collisions.
type Key struct {
	ActivityID uuid.UUID
	Date       Date
}

// Assignment is an attendance record for one (activity, date) pair. When
// Override is set it supersedes the version's nominal time interval.
type Assignment struct {
	ActivityID  uuid.UUID
	Date        Date
	ResourceIDs []uuid.UUID
	Override    *TimeInterval
}

// Event is the final calendar output unit: one per assigned resource, plus
// one synthetic unassigned event per still-open headcount slot (ResourceID
// nil).
type Event struct {
	ActivityID        uuid.UUID  `json:"activityId"`
	Name              string     `json:"name"`
	StartsAt          time.Time  `json:"startsAt"`
	Duration          int        `json:"duration"`
	RequiredResources int        `json:"requiredResources"`
	AssignedResources int        `json:"assignedResources"`
	ResourceID        *uuid.UUID `json:"resourceId,omitempty"`
}

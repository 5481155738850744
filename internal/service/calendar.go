package service

import (
	"errors"
	"fmt"
	"time"

	"scheduler-backend/internal/calendar"
	"scheduler-backend/internal/database/models"
	apperrors "scheduler-backend/internal/errors"
	"scheduler-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxWindowDays caps a single calendar query. Expansion cost grows with the
// window and with the version count of every activity in it, so the API
// serves at most one week per call.
const maxWindowDays = 7

// CalendarService computes merged calendars. It owns the I/O side of a
// query: resolving time zones, loading version histories and attendance
// records, and converting rows for the pure computation in
// internal/calendar.
type CalendarService struct {
	schoolRepo     repository.SchoolRepositoryInterface
	resourceRepo   repository.ResourceRepositoryInterface
	versionRepo    repository.ActivityVersionRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
}

// Ensure CalendarService implements CalendarServiceInterface
var _ CalendarServiceInterface = (*CalendarService)(nil)

// NewCalendarService creates a new calendar service
func NewCalendarService(schoolRepo repository.SchoolRepositoryInterface, resourceRepo repository.ResourceRepositoryInterface, versionRepo repository.ActivityVersionRepositoryInterface, assignmentRepo repository.AssignmentRepositoryInterface) *CalendarService {
	return &CalendarService{
		schoolRepo:     schoolRepo,
		resourceRepo:   resourceRepo,
		versionRepo:    versionRepo,
		assignmentRepo: assignmentRepo,
	}
}

// CalendarResponse represents a computed calendar window. School calendars
// carry the school's resource directory alongside the events so callers can
// render assigned resource IDs as display names without extra requests.
type CalendarResponse struct {
	From      string             `json:"from"`
	To        string             `json:"to"`
	Resources []ResourceResponse `json:"resources,omitempty"`
	Events    []calendar.Event   `json:"events"`
}

// GetSchoolCalendar computes the calendar of every activity in a school
// over [startDate, startDate+days) in the school's time zone.
func (s *CalendarService) GetSchoolCalendar(schoolID uuid.UUID, startDate string, days int) (*CalendarResponse, error) {
	if days < 1 {
		return nil, apperrors.ErrInvalidWindow
	}
	if days > maxWindowDays {
		return nil, apperrors.ErrWindowTooLong
	}

	school, err := s.schoolRepo.GetByID(schoolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("failed to load school: %w", err)
	}

	loc, err := time.LoadLocation(school.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownTimeZone, school.TimeZone)
	}

	start, err := time.ParseInLocation(dateLayout, startDate, loc)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be in YYYY-MM-DD format")
	}
	from := start
	to := start.AddDate(0, 0, days)

	rows, err := s.versionRepo.GetBySchoolID(schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity versions: %w", err)
	}

	activities, activityIDs, err := groupVersions(rows, loc)
	if err != nil {
		return nil, err
	}

	assignments, err := s.loadAssignments(activityIDs, from, to, loc)
	if err != nil {
		return nil, err
	}

	events, err := calendar.Compute(activities, assignments, from, to)
	if err != nil {
		return nil, err
	}

	resources, err := s.resourceRepo.GetBySchoolID(schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}
	directory := make([]ResourceResponse, 0, len(resources))
	for i := range resources {
		directory = append(directory, ResourceResponse{
			ID:        resources[i].ID,
			SchoolID:  resources[i].SchoolID,
			Name:      resources[i].Name,
			IsActive:  resources[i].IsActive,
			CreatedAt: resources[i].CreatedAt.Format(time.RFC3339),
		})
	}

	return &CalendarResponse{
		From:      from.Format(time.RFC3339),
		To:        to.Format(time.RFC3339),
		Resources: directory,
		Events:    events,
	}, nil
}

// GetActivitiesCalendar computes the merged calendar of an explicit set of
// activities over [from, to). Each activity is expanded in its own school's
// time zone; a missing history for any requested activity fails the whole
// query.
func (s *CalendarService) GetActivitiesCalendar(activityIDs []uuid.UUID, from, to time.Time) (*CalendarResponse, error) {
	if !to.After(from) {
		return nil, apperrors.ErrInvalidWindow
	}
	if to.Sub(from) > maxWindowDays*24*time.Hour {
		return nil, apperrors.ErrWindowTooLong
	}

	locations := make(map[uuid.UUID]*time.Location)
	activities := make([][]calendar.Version, 0, len(activityIDs))
	for _, activityID := range activityIDs {
		rows, err := s.versionRepo.GetByActivityID(activityID)
		if err != nil {
			return nil, fmt.Errorf("failed to load activity versions: %w", err)
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("activity %s: %w", activityID, apperrors.ErrNoVersionsFound)
		}

		loc, err := s.schoolLocation(rows[0].SchoolID, locations)
		if err != nil {
			return nil, err
		}

		versions := make([]calendar.Version, 0, len(rows))
		for _, row := range rows {
			version, err := versionToEngine(row, loc)
			if err != nil {
				return nil, err
			}
			versions = append(versions, version)
		}
		activities = append(activities, versions)
	}

	// Attendance is keyed by local date; widening the date range by a day on
	// each side covers every zone the activities can live in.
	assignments, err := s.loadAssignments(activityIDs, from.AddDate(0, 0, -1), to.AddDate(0, 0, 1), time.UTC)
	if err != nil {
		return nil, err
	}

	events, err := calendar.Compute(activities, assignments, from, to)
	if err != nil {
		return nil, err
	}

	return &CalendarResponse{
		From:   from.Format(time.RFC3339),
		To:     to.Format(time.RFC3339),
		Events: events,
	}, nil
}

func (s *CalendarService) schoolLocation(schoolID uuid.UUID, cache map[uuid.UUID]*time.Location) (*time.Location, error) {
	if loc, ok := cache[schoolID]; ok {
		return loc, nil
	}
	school, err := s.schoolRepo.GetByID(schoolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("failed to load school: %w", err)
	}
	loc, err := time.LoadLocation(school.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownTimeZone, school.TimeZone)
	}
	cache[schoolID] = loc
	return loc, nil
}

// loadAssignments fetches the attendance rows whose local date can fall in
// [from, to) and keys them for the merge.
func (s *CalendarService) loadAssignments(activityIDs []uuid.UUID, from, to time.Time, loc *time.Location) (map[calendar.Key]calendar.Assignment, error) {
	fromDate := localDateToDBDate(calendar.DateOf(from.In(loc)))
	toDate := localDateToDBDate(calendar.DateOf(to.In(loc))).AddDate(0, 0, 1)

	rows, err := s.assignmentRepo.GetByActivitiesInRange(activityIDs, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	assignments := make(map[calendar.Key]calendar.Assignment, len(rows))
	for _, row := range rows {
		record := assignmentToEngine(row)
		assignments[calendar.Key{ActivityID: record.ActivityID, Date: record.Date}] = record
	}
	return assignments, nil
}

// groupVersions splits school-wide version rows (ordered by activity_id,
// effective_from) into per-activity histories.
func groupVersions(rows []models.ActivityVersion, loc *time.Location) ([][]calendar.Version, []uuid.UUID, error) {
	var activities [][]calendar.Version
	var activityIDs []uuid.UUID
	var current []calendar.Version
	var currentID uuid.UUID

	for _, row := range rows {
		if len(current) > 0 && row.ActivityID != currentID {
			activities = append(activities, current)
			current = nil
		}
		if len(current) == 0 {
			currentID = row.ActivityID
			activityIDs = append(activityIDs, currentID)
		}
		version, err := versionToEngine(row, loc)
		if err != nil {
			return nil, nil, err
		}
		current = append(current, version)
	}
	if len(current) > 0 {
		activities = append(activities, current)
	}
	return activities, activityIDs, nil
}

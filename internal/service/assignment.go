package service

import (
	"errors"
	"fmt"
	"time"

	"scheduler-backend/internal/calendar"
	"scheduler-backend/internal/database/models"
	apperrors "scheduler-backend/internal/errors"
	"scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService handles business logic for attendance records
type AssignmentService struct {
	repo         repository.AssignmentRepositoryInterface
	versionRepo  repository.ActivityVersionRepositoryInterface
	resourceRepo repository.ResourceRepositoryInterface
	validator    *validator.Validate
}

// Ensure AssignmentService implements AssignmentServiceInterface
var _ AssignmentServiceInterface = (*AssignmentService)(nil)

// NewAssignmentService creates a new assignment service
func NewAssignmentService(repo repository.AssignmentRepositoryInterface, versionRepo repository.ActivityVersionRepositoryInterface, resourceRepo repository.ResourceRepositoryInterface, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		repo:         repo,
		versionRepo:  versionRepo,
		resourceRepo: resourceRepo,
		validator:    validator,
	}
}

// SetAssignmentRequest represents the request to record attendance for one
// activity on one date. ResourceIDs may be empty to clear the record's
// assignments; Time, when set, overrides the activity's nominal interval
// for that date only.
type SetAssignmentRequest struct {
	Date        string                 `json:"date" validate:"required"`
	ResourceIDs []uuid.UUID            `json:"resource_ids"`
	Time        *calendar.TimeInterval `json:"time,omitempty"`
}

// AssignmentResponse represents the response for assignment operations
type AssignmentResponse struct {
	ID          uuid.UUID              `json:"id"`
	ActivityID  uuid.UUID              `json:"activity_id"`
	SchoolID    uuid.UUID              `json:"school_id"`
	Date        string                 `json:"date"`
	ResourceIDs []uuid.UUID            `json:"resource_ids"`
	Time        *calendar.TimeInterval `json:"time,omitempty"`
}

// SetAssignment creates or replaces the attendance record for an activity
// on a date
func (s *AssignmentService) SetAssignment(activityID uuid.UUID, req *SetAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be in YYYY-MM-DD format")
	}

	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return nil, err
		}
	}

	latest, err := s.versionRepo.GetLatestByActivityID(activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	if err := s.checkResources(req.ResourceIDs, latest.SchoolID); err != nil {
		return nil, err
	}

	assignment, err := s.repo.GetByActivityAndDate(activityID, date)
	switch {
	case err == nil:
		assignment.TimeStartsAt = nil
		assignment.TimeDuration = nil
		if req.Time != nil {
			assignment.TimeStartsAt = &req.Time.StartsAt
			assignment.TimeDuration = &req.Time.Duration
		}
		if err := s.repo.Replace(assignment, buildAssignedResources(req.ResourceIDs)); err != nil {
			return nil, fmt.Errorf("failed to replace assignment: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		assignment = &models.Assignment{
			ActivityID:        activityID,
			SchoolID:          latest.SchoolID,
			Date:              date,
			AssignedResources: buildAssignedResources(req.ResourceIDs),
		}
		if req.Time != nil {
			assignment.TimeStartsAt = &req.Time.StartsAt
			assignment.TimeDuration = &req.Time.Duration
		}
		if err := s.repo.Create(assignment); err != nil {
			return nil, fmt.Errorf("failed to create assignment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}

	return s.toResponse(assignment, req.ResourceIDs), nil
}

// GetAssignment retrieves the attendance record for an activity on a date
func (s *AssignmentService) GetAssignment(activityID uuid.UUID, dateStr string) (*AssignmentResponse, error) {
	date, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be in YYYY-MM-DD format")
	}

	assignment, err := s.repo.GetByActivityAndDate(activityID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(assignment.AssignedResources))
	for _, assigned := range assignment.AssignedResources {
		ids = append(ids, assigned.ResourceID)
	}
	return s.toResponse(assignment, ids), nil
}

// checkResources rejects duplicate IDs and resources that do not belong to
// the activity's school. Assigning a resource from another tenant would be
// invisible in that tenant's own calendar, so it is an error, not a no-op.
func (s *AssignmentService) checkResources(resourceIDs []uuid.UUID, schoolID uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(resourceIDs))
	for _, id := range resourceIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateResourceIDs, id)
		}
		seen[id] = struct{}{}
	}

	if len(resourceIDs) == 0 {
		return nil
	}

	resources, err := s.resourceRepo.GetByIDs(resourceIDs)
	if err != nil {
		return fmt.Errorf("failed to load resources: %w", err)
	}
	found := make(map[uuid.UUID]uuid.UUID, len(resources))
	for _, resource := range resources {
		found[resource.ID] = resource.SchoolID
	}
	for _, id := range resourceIDs {
		owner, ok := found[id]
		if !ok {
			return fmt.Errorf("%w: %s", apperrors.ErrResourceNotFound, id)
		}
		if owner != schoolID {
			return fmt.Errorf("%w: %s", apperrors.ErrResourceNotInSchool, id)
		}
	}
	return nil
}

func buildAssignedResources(resourceIDs []uuid.UUID) []models.AssignedResource {
	now := time.Now().UTC()
	resources := make([]models.AssignedResource, 0, len(resourceIDs))
	for _, id := range resourceIDs {
		resources = append(resources, models.AssignedResource{
			ResourceID: id,
			AssignedAt: now,
		})
	}
	return resources
}

func (s *AssignmentService) toResponse(assignment *models.Assignment, resourceIDs []uuid.UUID) *AssignmentResponse {
	resp := &AssignmentResponse{
		ID:          assignment.ID,
		ActivityID:  assignment.ActivityID,
		SchoolID:    assignment.SchoolID,
		Date:        assignment.Date.UTC().Format(dateLayout),
		ResourceIDs: resourceIDs,
	}
	if assignment.TimeStartsAt != nil && assignment.TimeDuration != nil {
		resp.Time = &calendar.TimeInterval{
			StartsAt: *assignment.TimeStartsAt,
			Duration: *assignment.TimeDuration,
		}
	}
	return resp
}

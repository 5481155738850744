package service

import (
	"encoding/json"
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

// ActivityService handles business logic for schedulable activities. An
// activity has no row of its own: it exists as an append-only chain of
// version snapshots, and every edit appends a new one.
type ActivityService struct {
	versionRepo repository.ActivityVersionRepositoryInterface
	schoolRepo  repository.SchoolRepositoryInterface
	validator   *validator.Validate
}

// Ensure ActivityService implements ActivityServiceInterface
var _ ActivityServiceInterface = (*ActivityService)(nil)

// NewActivityService creates a new activity service
func NewActivityService(versionRepo repository.ActivityVersionRepositoryInterface, schoolRepo repository.SchoolRepositoryInterface, validator *validator.Validate) *ActivityService {
	return &ActivityService{
		versionRepo: versionRepo,
		schoolRepo:  schoolRepo,
		validator:   validator,
	}
}

// CreateActivityRequest represents the request to create an activity
type CreateActivityRequest struct {
	Name              string                `json:"name" validate:"required,min=1,max=100"`
	Periodicity       calendar.Periodicity  `json:"periodicity" validate:"required"`
	Time              calendar.TimeInterval `json:"time"`
	RequiredResources int                   `json:"required_resources" validate:"min=0"`
	EffectiveFrom     *time.Time            `json:"effective_from,omitempty"`
}

// UpdateActivityRequest represents an edit. Only set fields change; the
// edit becomes a new version effective from EffectiveFrom (default: now).
type UpdateActivityRequest struct {
	Name              *string                `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Periodicity       *calendar.Periodicity  `json:"periodicity,omitempty"`
	Time              *calendar.TimeInterval `json:"time,omitempty"`
	RequiredResources *int                   `json:"required_resources,omitempty" validate:"omitempty,min=0"`
	EffectiveFrom     *time.Time             `json:"effective_from,omitempty"`
}

// ActivityVersionResponse represents one version snapshot
type ActivityVersionResponse struct {
	ActivityID        uuid.UUID             `json:"activity_id"`
	SchoolID          uuid.UUID             `json:"school_id"`
	Name              string                `json:"name"`
	Periodicity       calendar.Periodicity  `json:"periodicity"`
	Time              calendar.TimeInterval `json:"time"`
	RequiredResources int                   `json:"required_resources"`
	EffectiveFrom     string                `json:"effective_from"`
	CreatedAt         string                `json:"created_at"`
}

// ActivityVersionListResponse represents an activity's full history
type ActivityVersionListResponse struct {
	ActivityID uuid.UUID                 `json:"activity_id"`
	Versions   []ActivityVersionResponse `json:"versions"`
}

// CreateActivity creates a new activity by writing its first version
func (s *ActivityService) CreateActivity(schoolID uuid.UUID, req *CreateActivityRequest) (*ActivityVersionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := req.Periodicity.Validate(); err != nil {
		return nil, err
	}
	if err := req.Time.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.schoolRepo.GetByID(schoolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("failed to verify school: %w", err)
	}

	effectiveFrom := time.Now().UTC()
	if req.EffectiveFrom != nil {
		effectiveFrom = req.EffectiveFrom.UTC()
	}

	version, err := s.buildVersion(uuid.New(), schoolID, req.Name, req.Periodicity, req.Time, req.RequiredResources, effectiveFrom)
	if err != nil {
		return nil, err
	}

	if err := s.versionRepo.Create(version); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return s.toResponse(version)
}

// UpdateActivity appends a new version carrying the edit. Earlier versions
// stay untouched, so calendar queries over past dates are unaffected.
func (s *ActivityService) UpdateActivity(activityID uuid.UUID, req *UpdateActivityRequest) (*ActivityVersionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	latest, err := s.versionRepo.GetLatestByActivityID(activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	name := latest.Name
	if req.Name != nil {
		name = *req.Name
	}

	var periodicity calendar.Periodicity
	if req.Periodicity != nil {
		periodicity = *req.Periodicity
	} else if err := json.Unmarshal(latest.Periodicity, &periodicity); err != nil {
		return nil, fmt.Errorf("failed to decode stored periodicity: %w", err)
	}
	if err := periodicity.Validate(); err != nil {
		return nil, err
	}

	interval := calendar.TimeInterval{StartsAt: latest.TimeStartsAt, Duration: latest.TimeDuration}
	if req.Time != nil {
		interval = *req.Time
	}
	if err := interval.Validate(); err != nil {
		return nil, err
	}

	required := latest.RequiredResources
	if req.RequiredResources != nil {
		required = *req.RequiredResources
	}

	effectiveFrom := time.Now().UTC()
	if req.EffectiveFrom != nil {
		effectiveFrom = req.EffectiveFrom.UTC()
	}
	if !effectiveFrom.After(latest.EffectiveFrom) {
		return nil, apperrors.ErrEffectiveFromNotAfter
	}

	version, err := s.buildVersion(activityID, latest.SchoolID, name, periodicity, interval, required, effectiveFrom)
	if err != nil {
		return nil, err
	}

	if err := s.versionRepo.Create(version); err != nil {
		return nil, fmt.Errorf("failed to append activity version: %w", err)
	}

	return s.toResponse(version)
}

// GetActivity retrieves the current (latest) version of an activity
func (s *ActivityService) GetActivity(activityID uuid.UUID) (*ActivityVersionResponse, error) {
	latest, err := s.versionRepo.GetLatestByActivityID(activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	return s.toResponse(latest)
}

// GetActivityVersions retrieves the full version history, oldest first
func (s *ActivityService) GetActivityVersions(activityID uuid.UUID) (*ActivityVersionListResponse, error) {
	rows, err := s.versionRepo.GetByActivityID(activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity versions: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrNoVersionsFound
	}

	versions := make([]ActivityVersionResponse, 0, len(rows))
	for i := range rows {
		resp, err := s.toResponse(&rows[i])
		if err != nil {
			return nil, err
		}
		versions = append(versions, *resp)
	}

	return &ActivityVersionListResponse{
		ActivityID: activityID,
		Versions:   versions,
	}, nil
}

func (s *ActivityService) buildVersion(activityID, schoolID uuid.UUID, name string, periodicity calendar.Periodicity, interval calendar.TimeInterval, required int, effectiveFrom time.Time) (*models.ActivityVersion, error) {
	raw, err := json.Marshal(periodicity)
	if err != nil {
		return nil, fmt.Errorf("failed to encode periodicity: %w", err)
	}

	return &models.ActivityVersion{
		ActivityID:        activityID,
		SchoolID:          schoolID,
		Name:              name,
		Periodicity:       raw,
		TimeStartsAt:      interval.StartsAt,
		TimeDuration:      interval.Duration,
		RequiredResources: required,
		EffectiveFrom:     effectiveFrom,
	}, nil
}

func (s *ActivityService) toResponse(row *models.ActivityVersion) (*ActivityVersionResponse, error) {
	var periodicity calendar.Periodicity
	if err := json.Unmarshal(row.Periodicity, &periodicity); err != nil {
		return nil, fmt.Errorf("failed to decode stored periodicity: %w", err)
	}

	return &ActivityVersionResponse{
		ActivityID:        row.ActivityID,
		SchoolID:          row.SchoolID,
		Name:              row.Name,
		Periodicity:       periodicity,
		Time:              calendar.TimeInterval{StartsAt: row.TimeStartsAt, Duration: row.TimeDuration},
		RequiredResources: row.RequiredResources,
		EffectiveFrom:     row.EffectiveFrom.Format(time.RFC3339),
		CreatedAt:         row.CreatedAt.Format(time.RFC3339),
	}, nil
}

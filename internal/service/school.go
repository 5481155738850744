package service

import (
	"errors"
	"fmt"
	"time"

	"scheduler-backend/internal/database/models"
	apperrors "scheduler-backend/internal/errors"
	"scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolService handles business logic for schools
type SchoolService struct {
	repo      repository.SchoolRepositoryInterface
	validator *validator.Validate
}

// Ensure SchoolService implements SchoolServiceInterface
var _ SchoolServiceInterface = (*SchoolService)(nil)

// NewSchoolService creates a new school service
func NewSchoolService(repo repository.SchoolRepositoryInterface, validator *validator.Validate) *SchoolService {
	return &SchoolService{
		repo:      repo,
		validator: validator,
	}
}

// CreateSchoolRequest represents the request to create a school
type CreateSchoolRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	TimeZone string `json:"time_zone" validate:"required"`
}

// SchoolResponse represents the response for school operations
type SchoolResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TimeZone  string    `json:"time_zone"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// SchoolListResponse represents a paginated list of schools
type SchoolListResponse struct {
	Schools  []SchoolResponse `json:"schools"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateSchool creates a new school
func (s *SchoolService) CreateSchool(req *CreateSchoolRequest) (*SchoolResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Every calendar computation for this tenant depends on the zone, so an
	// unknown name is rejected here rather than at query time.
	if _, err := time.LoadLocation(req.TimeZone); err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownTimeZone, req.TimeZone)
	}

	school := &models.School{
		Name:     req.Name,
		TimeZone: req.TimeZone,
	}

	if err := s.repo.Create(school); err != nil {
		return nil, fmt.Errorf("failed to create school: %w", err)
	}

	return s.toResponse(school), nil
}

// GetSchoolByID retrieves a school by ID
func (s *SchoolService) GetSchoolByID(id uuid.UUID) (*SchoolResponse, error) {
	school, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("failed to get school: %w", err)
	}

	return s.toResponse(school), nil
}

// GetAllSchools retrieves schools with pagination
func (s *SchoolService) GetAllSchools(page, pageSize int) (*SchoolListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}

	schools, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}

	responses := make([]SchoolResponse, 0, len(schools))
	for i := range schools {
		responses = append(responses, *s.toResponse(&schools[i]))
	}

	return &SchoolListResponse{
		Schools:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *SchoolService) toResponse(school *models.School) *SchoolResponse {
	return &SchoolResponse{
		ID:        school.ID,
		Name:      school.Name,
		TimeZone:  school.TimeZone,
		CreatedAt: school.CreatedAt.Format(time.RFC3339),
		UpdatedAt: school.UpdatedAt.Format(time.RFC3339),
	}
}

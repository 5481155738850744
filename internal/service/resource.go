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

// ResourceService handles business logic for assignable resources
type ResourceService struct {
	repo       repository.ResourceRepositoryInterface
	schoolRepo repository.SchoolRepositoryInterface
	validator  *validator.Validate
}

// Ensure ResourceService implements ResourceServiceInterface
var _ ResourceServiceInterface = (*ResourceService)(nil)

// NewResourceService creates a new resource service
func NewResourceService(repo repository.ResourceRepositoryInterface, schoolRepo repository.SchoolRepositoryInterface, validator *validator.Validate) *ResourceService {
	return &ResourceService{
		repo:       repo,
		schoolRepo: schoolRepo,
		validator:  validator,
	}
}

// CreateResourceRequest represents the request to create a resource
type CreateResourceRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// ResourceResponse represents the response for resource operations
type ResourceResponse struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"school_id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
}

// CreateResource creates a new resource in a school
func (s *ResourceService) CreateResource(schoolID uuid.UUID, req *CreateResourceRequest) (*ResourceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.schoolRepo.GetByID(schoolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("failed to verify school: %w", err)
	}

	resource := &models.Resource{
		SchoolID: schoolID,
		Name:     req.Name,
		IsActive: true,
	}

	if err := s.repo.Create(resource); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return s.toResponse(resource), nil
}

// GetResourceByID retrieves a resource by ID
func (s *ResourceService) GetResourceByID(id uuid.UUID) (*ResourceResponse, error) {
	resource, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	return s.toResponse(resource), nil
}

// GetResourcesBySchool retrieves all resources of a school
func (s *ResourceService) GetResourcesBySchool(schoolID uuid.UUID) ([]ResourceResponse, error) {
	if _, err := s.schoolRepo.GetByID(schoolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("failed to verify school: %w", err)
	}

	resources, err := s.repo.GetBySchoolID(schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	responses := make([]ResourceResponse, 0, len(resources))
	for i := range resources {
		responses = append(responses, *s.toResponse(&resources[i]))
	}
	return responses, nil
}

func (s *ResourceService) toResponse(resource *models.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:        resource.ID,
		SchoolID:  resource.SchoolID,
		Name:      resource.Name,
		IsActive:  resource.IsActive,
		CreatedAt: resource.CreatedAt.Format(time.RFC3339),
	}
}

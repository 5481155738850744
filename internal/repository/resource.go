package repository

import (
	"scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceRepository handles database operations for assignable resources
type ResourceRepository struct {
	db *gorm.DB
}

// Ensure ResourceRepository implements ResourceRepositoryInterface
var _ ResourceRepositoryInterface = (*ResourceRepository)(nil)

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create creates a new resource
func (r *ResourceRepository) Create(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

// GetByID retrieves a resource by ID
func (r *ResourceRepository) GetByID(id uuid.UUID) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.First(&resource, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetBySchoolID retrieves all resources of a school ordered by name
func (r *ResourceRepository) GetBySchoolID(schoolID uuid.UUID) ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.Where("school_id = ?", schoolID).Order("name ASC").Find(&resources).Error
	return resources, err
}

// GetByIDs retrieves resources by a set of IDs
func (r *ResourceRepository) GetByIDs(ids []uuid.UUID) ([]models.Resource, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var resources []models.Resource
	err := r.db.Where("id IN ?", ids).Find(&resources).Error
	return resources, err
}

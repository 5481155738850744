package repository

import (
	"scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	db *gorm.DB
}

// Ensure SchoolRepository implements SchoolRepositoryInterface
var _ SchoolRepositoryInterface = (*SchoolRepository)(nil)

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *gorm.DB) *SchoolRepository {
	return &SchoolRepository{db: db}
}

// Create creates a new school
func (r *SchoolRepository) Create(school *models.School) error {
	return r.db.Create(school).Error
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(id uuid.UUID) (*models.School, error) {
	var school models.School
	err := r.db.First(&school, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &school, nil
}

// GetAll retrieves all schools
func (r *SchoolRepository) GetAll(limit, offset int) ([]models.School, int64, error) {
	var schools []models.School
	var total int64

	if err := r.db.Model(&models.School{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at ASC").Limit(limit).Offset(offset).Find(&schools).Error
	return schools, total, err
}

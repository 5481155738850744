package repository

import (
	"scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityVersionRepository is the version store: append-only snapshots of
// activities, read back ordered by effective_from. Rows are never updated
// or deleted here.
type ActivityVersionRepository struct {
	db *gorm.DB
}

// Ensure ActivityVersionRepository implements ActivityVersionRepositoryInterface
var _ ActivityVersionRepositoryInterface = (*ActivityVersionRepository)(nil)

// NewActivityVersionRepository creates a new activity version repository
func NewActivityVersionRepository(db *gorm.DB) *ActivityVersionRepository {
	return &ActivityVersionRepository{db: db}
}

// Create appends a new version row
func (r *ActivityVersionRepository) Create(version *models.ActivityVersion) error {
	return r.db.Create(version).Error
}

// GetByActivityID retrieves the full version history of one activity,
// ordered by effective_from ascending
func (r *ActivityVersionRepository) GetByActivityID(activityID uuid.UUID) ([]models.ActivityVersion, error) {
	var versions []models.ActivityVersion
	err := r.db.Where("activity_id = ?", activityID).Order("effective_from ASC").Find(&versions).Error
	return versions, err
}

// GetLatestByActivityID retrieves the newest version of one activity
func (r *ActivityVersionRepository) GetLatestByActivityID(activityID uuid.UUID) (*models.ActivityVersion, error) {
	var version models.ActivityVersion
	err := r.db.Where("activity_id = ?", activityID).Order("effective_from DESC").First(&version).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// GetBySchoolID retrieves every version of every activity in a school,
// ordered so the rows of one activity are adjacent and oldest-first
func (r *ActivityVersionRepository) GetBySchoolID(schoolID uuid.UUID) ([]models.ActivityVersion, error) {
	var versions []models.ActivityVersion
	err := r.db.Where("school_id = ?", schoolID).Order("activity_id ASC, effective_from ASC").Find(&versions).Error
	return versions, err
}

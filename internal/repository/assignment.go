package repository

import (
	"time"

	"scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for attendance records
type AssignmentRepository struct {
	db *gorm.DB
}

// Ensure AssignmentRepository implements AssignmentRepositoryInterface
var _ AssignmentRepositoryInterface = (*AssignmentRepository)(nil)

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment record including its assigned resources
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// GetByActivityAndDate retrieves the record for one activity on one date
func (r *AssignmentRepository) GetByActivityAndDate(activityID uuid.UUID, date time.Time) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.Preload("AssignedResources").
		Where("activity_id = ? AND date = ?", activityID, date).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByActivitiesInRange retrieves all records for the given activities with
// date in [from, to)
func (r *AssignmentRepository) GetByActivitiesInRange(activityIDs []uuid.UUID, from, to time.Time) ([]models.Assignment, error) {
	if len(activityIDs) == 0 {
		return nil, nil
	}
	var assignments []models.Assignment
	err := r.db.Preload("AssignedResources").
		Where("activity_id IN ? AND date >= ? AND date < ?", activityIDs, from, to).
		Order("date ASC").
		Find(&assignments).Error
	return assignments, err
}

// Replace updates an existing record's override interval and swaps its
// assigned resources in one transaction
func (r *AssignmentRepository) Replace(assignment *models.Assignment, resources []models.AssignedResource) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", assignment.ID).Delete(&models.AssignedResource{}).Error; err != nil {
			return err
		}
		if err := tx.Model(assignment).Select("TimeStartsAt", "TimeDuration", "UpdatedAt").Updates(map[string]interface{}{
			"time_starts_at": assignment.TimeStartsAt,
			"time_duration":  assignment.TimeDuration,
			"updated_at":     time.Now(),
		}).Error; err != nil {
			return err
		}
		for i := range resources {
			resources[i].AssignmentID = assignment.ID
			if err := tx.Create(&resources[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"scheduler-backend/internal/config"
	"scheduler-backend/internal/database"
	"scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type SchoolData struct {
	Name     string `yaml:"name"`
	TimeZone string `yaml:"time_zone"`
}

type ResourceData struct {
	Name       string `yaml:"name"`
	SchoolName string `yaml:"school_name"`
	IsActive   *bool  `yaml:"is_active,omitempty"`
}

type ActivityData struct {
	Name              string                 `yaml:"name"`
	SchoolName        string                 `yaml:"school_name"`
	Periodicity       map[string]interface{} `yaml:"periodicity"`
	StartsAt          int                    `yaml:"starts_at"`
	Duration          int                    `yaml:"duration"`
	RequiredResources int                    `yaml:"required_resources"`
	EffectiveFrom     string                 `yaml:"effective_from"`
}

type AssignmentData struct {
	ActivityName string   `yaml:"activity_name"`
	SchoolName   string   `yaml:"school_name"`
	Date         string   `yaml:"date"`
	Resources    []string `yaml:"resources,omitempty"`
	StartsAt     *int     `yaml:"starts_at,omitempty"`
	Duration     *int     `yaml:"duration,omitempty"`
}

// File structures
type SchoolsFile struct {
	Schools []SchoolData `yaml:"schools"`
}

type ResourcesFile struct {
	Resources []ResourceData `yaml:"resources"`
}

type ActivitiesFile struct {
	Activities []ActivityData `yaml:"activities"`
}

type AssignmentsFile struct {
	Assignments []AssignmentData `yaml:"assignments"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var schoolsFile SchoolsFile
	if err := readYAML(filepath.Join(dataDir, "schools.yaml"), &schoolsFile); err != nil {
		return fmt.Errorf("failed to load schools: %w", err)
	}

	var resourcesFile ResourcesFile
	if err := readYAML(filepath.Join(dataDir, "resources.yaml"), &resourcesFile); err != nil {
		return fmt.Errorf("failed to load resources: %w", err)
	}

	var activitiesFile ActivitiesFile
	if err := readYAML(filepath.Join(dataDir, "activities.yaml"), &activitiesFile); err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}

	var assignmentsFile AssignmentsFile
	if err := readYAML(filepath.Join(dataDir, "assignments.yaml"), &assignmentsFile); err != nil {
		return fmt.Errorf("failed to load assignments: %w", err)
	}

	// Insert in dependency order: schools, resources, activities, assignments
	schoolsByName := make(map[string]*models.School)
	for _, data := range schoolsFile.Schools {
		school, err := upsertSchool(db, data)
		if err != nil {
			return fmt.Errorf("school %q: %w", data.Name, err)
		}
		schoolsByName[data.Name] = school
	}
	log.Printf("📚 Loaded %d schools", len(schoolsByName))

	resourcesByKey := make(map[string]*models.Resource)
	for _, data := range resourcesFile.Resources {
		school, ok := schoolsByName[data.SchoolName]
		if !ok {
			return fmt.Errorf("resource %q references unknown school %q", data.Name, data.SchoolName)
		}
		resource, err := upsertResource(db, school.ID, data)
		if err != nil {
			return fmt.Errorf("resource %q: %w", data.Name, err)
		}
		resourcesByKey[data.SchoolName+"/"+data.Name] = resource
	}
	log.Printf("👩‍🏫 Loaded %d resources", len(resourcesByKey))

	activitiesByKey := make(map[string]uuid.UUID)
	for _, data := range activitiesFile.Activities {
		school, ok := schoolsByName[data.SchoolName]
		if !ok {
			return fmt.Errorf("activity %q references unknown school %q", data.Name, data.SchoolName)
		}
		activityID, err := upsertActivityVersion(db, school.ID, data)
		if err != nil {
			return fmt.Errorf("activity %q: %w", data.Name, err)
		}
		activitiesByKey[data.SchoolName+"/"+data.Name] = activityID
	}
	log.Printf("📅 Loaded %d activities", len(activitiesByKey))

	count := 0
	for _, data := range assignmentsFile.Assignments {
		school, ok := schoolsByName[data.SchoolName]
		if !ok {
			return fmt.Errorf("assignment for %q references unknown school %q", data.ActivityName, data.SchoolName)
		}
		activityID, ok := activitiesByKey[data.SchoolName+"/"+data.ActivityName]
		if !ok {
			return fmt.Errorf("assignment references unknown activity %q in school %q", data.ActivityName, data.SchoolName)
		}
		if err := upsertAssignment(db, school.ID, activityID, data, resourcesByKey); err != nil {
			return fmt.Errorf("assignment for %q on %s: %w", data.ActivityName, data.Date, err)
		}
		count++
	}
	log.Printf("📝 Loaded %d attendance records", count)

	return nil
}

func readYAML(path string, target interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, target)
}

func upsertSchool(db *gorm.DB, data SchoolData) (*models.School, error) {
	var school models.School
	err := db.Where("name = ?", data.Name).First(&school).Error
	if err == gorm.ErrRecordNotFound {
		school = models.School{Name: data.Name, TimeZone: data.TimeZone}
		return &school, db.Create(&school).Error
	}
	if err != nil {
		return nil, err
	}
	school.TimeZone = data.TimeZone
	return &school, db.Save(&school).Error
}

func upsertResource(db *gorm.DB, schoolID uuid.UUID, data ResourceData) (*models.Resource, error) {
	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}

	var resource models.Resource
	err := db.Where("school_id = ? AND name = ?", schoolID, data.Name).First(&resource).Error
	if err == gorm.ErrRecordNotFound {
		resource = models.Resource{SchoolID: schoolID, Name: data.Name, IsActive: isActive}
		return &resource, db.Create(&resource).Error
	}
	if err != nil {
		return nil, err
	}
	resource.IsActive = isActive
	return &resource, db.Save(&resource).Error
}

// upsertActivityVersion appends a version row. The activity ID is resolved by
// name within the school so that re-running the loader with a later
// effective_from extends an existing activity's history instead of forking a
// new activity.
func upsertActivityVersion(db *gorm.DB, schoolID uuid.UUID, data ActivityData) (uuid.UUID, error) {
	effectiveFrom, err := time.Parse(time.RFC3339, data.EffectiveFrom)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid effective_from %q: %w", data.EffectiveFrom, err)
	}

	periodicity, err := json.Marshal(data.Periodicity)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid periodicity: %w", err)
	}

	activityID := uuid.New()
	var existing models.ActivityVersion
	err = db.Where("school_id = ? AND name = ?", schoolID, data.Name).
		Order("effective_from DESC").First(&existing).Error
	if err == nil {
		activityID = existing.ActivityID
		// Same instant already loaded: nothing to append
		if existing.EffectiveFrom.Equal(effectiveFrom.UTC()) {
			return activityID, nil
		}
	} else if err != gorm.ErrRecordNotFound {
		return uuid.Nil, err
	}

	version := models.ActivityVersion{
		ActivityID:        activityID,
		SchoolID:          schoolID,
		Name:              data.Name,
		Periodicity:       periodicity,
		TimeStartsAt:      data.StartsAt,
		TimeDuration:      data.Duration,
		RequiredResources: data.RequiredResources,
		EffectiveFrom:     effectiveFrom.UTC(),
	}
	return activityID, db.Create(&version).Error
}

func upsertAssignment(db *gorm.DB, schoolID, activityID uuid.UUID, data AssignmentData, resourcesByKey map[string]*models.Resource) error {
	date, err := time.Parse("2006-01-02", data.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", data.Date, err)
	}

	var assigned []models.AssignedResource
	for _, name := range data.Resources {
		resource, ok := resourcesByKey[data.SchoolName+"/"+name]
		if !ok {
			return fmt.Errorf("unknown resource %q", name)
		}
		assigned = append(assigned, models.AssignedResource{
			ResourceID: resource.ID,
			AssignedAt: time.Now().UTC(),
		})
	}

	var existing models.Assignment
	err = db.Where("activity_id = ? AND date = ?", activityID, date).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		assignment := models.Assignment{
			ActivityID:        activityID,
			SchoolID:          schoolID,
			Date:              date,
			TimeStartsAt:      data.StartsAt,
			TimeDuration:      data.Duration,
			AssignedResources: assigned,
		}
		return db.Create(&assignment).Error
	}
	if err != nil {
		return err
	}
	// Already seeded: leave the record alone so manual edits survive reruns
	return nil
}

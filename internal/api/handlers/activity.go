package handlers

import (
	"errors"
	"net/http"

	apperrors "scheduler-backend/internal/errors"
	"scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivityHandler handles HTTP requests for activities
type ActivityHandler struct {
	service service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// CreateActivity handles POST /api/v1/schools/:id/activities
// @Summary Create a new activity
// @Description Create a new recurring activity in a school by writing its first version
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "School ID (UUID)"
// @Param activity body service.CreateActivityRequest true "Activity data"
// @Success 201 {object} service.ActivityVersionResponse "Successfully created activity"
// @Failure 400 {object} map[string]interface{} "Invalid request body, periodicity or time interval"
// @Failure 404 {object} map[string]interface{} "School not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schools/{id}/activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	schoolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school ID: invalid UUID format"})
		return
	}

	var req service.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	activity, err := h.service.CreateActivity(schoolID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSchoolNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsInvalidPeriodicity(err), apperrors.IsValidation(err), errors.Is(err, apperrors.ErrInvalidTimeInterval):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// UpdateActivity handles PUT /api/v1/activities/:id
// @Summary Update an activity
// @Description Append a new version of the activity; history and past calendars stay intact
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Param activity body service.UpdateActivityRequest true "Fields to change"
// @Success 200 {object} service.ActivityVersionResponse "Successfully updated activity"
// @Failure 400 {object} map[string]interface{} "Invalid request body or effective date"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /activities/{id} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID: invalid UUID format"})
		return
	}

	var req service.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	activity, err := h.service.UpdateActivity(activityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrEffectiveFromNotAfter),
			errors.Is(err, apperrors.ErrInvalidTimeInterval),
			apperrors.IsInvalidPeriodicity(err),
			apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, activity)
}

// GetActivity handles GET /api/v1/activities/:id
// @Summary Get activity by ID
// @Description Get the current (latest) version of an activity
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 200 {object} service.ActivityVersionResponse "Successfully retrieved activity"
// @Failure 400 {object} map[string]interface{} "Invalid activity ID"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID: invalid UUID format"})
		return
	}

	activity, err := h.service.GetActivity(activityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get activity", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activity)
}

// ListActivityVersions handles GET /api/v1/activities/:id/versions
// @Summary List activity versions
// @Description Get the full version history of an activity, oldest first
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 200 {object} service.ActivityVersionListResponse "Successfully retrieved versions"
// @Failure 400 {object} map[string]interface{} "Invalid activity ID"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /activities/{id}/versions [get]
func (h *ActivityHandler) ListActivityVersions(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID: invalid UUID format"})
		return
	}

	versions, err := h.service.GetActivityVersions(activityID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activity versions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, versions)
}

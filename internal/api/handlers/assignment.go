package handlers

import (
	"errors"
	"net/http"

	apperrors "scheduler-backend/internal/errors"
	"scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for attendance records
type AssignmentHandler struct {
	service service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// SetAssignment handles PUT /api/v1/activities/:id/assignments
// @Summary Set the attendance record for a date
// @Description Create or replace the assigned resources (and optional time override) of an activity on one date
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Param assignment body service.SetAssignmentRequest true "Assignment data"
// @Success 200 {object} service.AssignmentResponse "Successfully recorded assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request body, date or resources"
// @Failure 404 {object} map[string]interface{} "Activity or resource not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /activities/{id}/assignments [put]
func (h *AssignmentHandler) SetAssignment(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID: invalid UUID format"})
		return
	}

	var req service.SetAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	assignment, err := h.service.SetAssignment(activityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrActivityNotFound), errors.Is(err, apperrors.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicateResourceIDs),
			errors.Is(err, apperrors.ErrResourceNotInSchool),
			errors.Is(err, apperrors.ErrInvalidTimeInterval),
			apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set assignment", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// GetAssignment handles GET /api/v1/activities/:id/assignments/:date
// @Summary Get the attendance record for a date
// @Description Get the assigned resources of an activity on one date
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Param date path string true "Local date (YYYY-MM-DD)"
// @Success 200 {object} service.AssignmentResponse "Successfully retrieved assignment"
// @Failure 400 {object} map[string]interface{} "Invalid activity ID or date"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /activities/{id}/assignments/{date} [get]
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID: invalid UUID format"})
		return
	}

	assignment, err := h.service.GetAssignment(activityID, c.Param("date"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAssignmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get assignment", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, assignment)
}

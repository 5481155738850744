package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "scheduler-backend/internal/errors"
	"scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalendarHandler handles HTTP requests for computed calendars
type CalendarHandler struct {
	service service.CalendarServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(service service.CalendarServiceInterface) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// ComputeCalendarRequest represents the request for an explicit activity set
type ComputeCalendarRequest struct {
	ActivityIDs []uuid.UUID `json:"activity_ids" binding:"required,min=1"`
	From        time.Time   `json:"from" binding:"required"`
	To          time.Time   `json:"to" binding:"required"`
}

// GetSchoolCalendar handles GET /api/v1/schools/:id/calendar
// @Summary Get a school's calendar
// @Description Compute the merged calendar of every activity in a school over a window of up to 7 days
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "School ID (UUID)"
// @Param date query string true "Window start date (YYYY-MM-DD, school-local)"
// @Param days query int false "Window length in days, 1-7 (default 7)"
// @Success 200 {object} service.CalendarResponse "Computed calendar"
// @Failure 400 {object} map[string]interface{} "Invalid window or date"
// @Failure 404 {object} map[string]interface{} "School not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schools/{id}/calendar [get]
func (h *CalendarHandler) GetSchoolCalendar(c *gin.Context) {
	schoolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school ID: invalid UUID format"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
		return
	}

	calendar, err := h.service.GetSchoolCalendar(schoolID, date, days)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSchoolNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidWindow),
			errors.Is(err, apperrors.ErrWindowTooLong),
			apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute calendar", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// ComputeCalendar handles POST /api/v1/calendar
// @Summary Compute a calendar for a set of activities
// @Description Compute the merged calendar of an explicit activity set over [from, to); any activity without history fails the whole request
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body ComputeCalendarRequest true "Activities and window"
// @Success 200 {object} service.CalendarResponse "Computed calendar"
// @Failure 400 {object} map[string]interface{} "Invalid window"
// @Failure 404 {object} map[string]interface{} "Activity history not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar [post]
func (h *CalendarHandler) ComputeCalendar(c *gin.Context) {
	var req ComputeCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	calendar, err := h.service.GetActivitiesCalendar(req.ActivityIDs, req.From, req.To)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidWindow), errors.Is(err, apperrors.ErrWindowTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute calendar", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, calendar)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "scheduler-backend/internal/errors"
	"scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SchoolHandler handles HTTP requests for schools
type SchoolHandler struct {
	service service.SchoolServiceInterface
}

// NewSchoolHandler creates a new school handler
func NewSchoolHandler(service service.SchoolServiceInterface) *SchoolHandler {
	return &SchoolHandler{service: service}
}

// CreateSchool handles POST /api/v1/schools
// @Summary Create a new school
// @Description Create a new school with a name and an IANA time zone
// @Tags schools
// @Accept json
// @Produce json
// @Param school body service.CreateSchoolRequest true "School data"
// @Success 201 {object} service.SchoolResponse "Successfully created school"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time zone"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schools [post]
func (h *SchoolHandler) CreateSchool(c *gin.Context) {
	var req service.CreateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	school, err := h.service.CreateSchool(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownTimeZone) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create school", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, school)
}

// GetSchool handles GET /api/v1/schools/:id
// @Summary Get school by ID
// @Description Get a specific school by its UUID
// @Tags schools
// @Accept json
// @Produce json
// @Param id path string true "School ID (UUID)"
// @Success 200 {object} service.SchoolResponse "Successfully retrieved school"
// @Failure 400 {object} map[string]interface{} "Invalid school ID"
// @Failure 404 {object} map[string]interface{} "School not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schools/{id} [get]
func (h *SchoolHandler) GetSchool(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school ID: invalid UUID format"})
		return
	}

	school, err := h.service.GetSchoolByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSchoolNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get school", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, school)
}

// ListSchools handles GET /api/v1/schools
// @Summary List schools
// @Description Get a paginated list of schools
// @Tags schools
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 100)"
// @Success 200 {object} service.SchoolListResponse "Successfully retrieved schools"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schools [get]
func (h *SchoolHandler) ListSchools(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	schools, err := h.service.GetAllSchools(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list schools", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, schools)
}

package handlers

import (
	"errors"
	"net/http"

	apperrors "scheduler-backend/internal/errors"
	"scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ResourceHandler handles HTTP requests for assignable resources
type ResourceHandler struct {
	service service.ResourceServiceInterface
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(service service.ResourceServiceInterface) *ResourceHandler {
	return &ResourceHandler{service: service}
}

// CreateResource handles POST /api/v1/schools/:id/resources
// @Summary Create a new resource
// @Description Create a new assignable resource in a school
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "School ID (UUID)"
// @Param resource body service.CreateResourceRequest true "Resource data"
// @Success 201 {object} service.ResourceResponse "Successfully created resource"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "School not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schools/{id}/resources [post]
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	schoolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school ID: invalid UUID format"})
		return
	}

	var req service.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resource, err := h.service.CreateResource(schoolID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSchoolNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resource", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resource)
}

// GetResource handles GET /api/v1/resources/:id
// @Summary Get resource by ID
// @Description Get a specific resource by its UUID
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID (UUID)"
// @Success 200 {object} service.ResourceResponse "Successfully retrieved resource"
// @Failure 400 {object} map[string]interface{} "Invalid resource ID"
// @Failure 404 {object} map[string]interface{} "Resource not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID: invalid UUID format"})
		return
	}

	resource, err := h.service.GetResourceByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get resource", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resource)
}

// ListResourcesBySchool handles GET /api/v1/schools/:id/resources
// @Summary List resources of a school
// @Description Get all assignable resources of a school ordered by name
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "School ID (UUID)"
// @Success 200 {array} service.ResourceResponse "Successfully retrieved resources"
// @Failure 400 {object} map[string]interface{} "Invalid school ID"
// @Failure 404 {object} map[string]interface{} "School not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schools/{id}/resources [get]
func (h *ResourceHandler) ListResourcesBySchool(c *gin.Context) {
	schoolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school ID: invalid UUID format"})
		return
	}

	resources, err := h.service.GetResourcesBySchool(schoolID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSchoolNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list resources", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resources)
}

package routes

import (
	"scheduler-backend/internal/api/handlers"
	"scheduler-backend/internal/api/middleware"
	"scheduler-backend/internal/auth"
	"scheduler-backend/internal/config"
	"scheduler-backend/internal/repository"
	"scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	schoolRepo := repository.NewSchoolRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	versionRepo := repository.NewActivityVersionRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	// Initialize services
	schoolService := service.NewSchoolService(schoolRepo, validator)
	resourceService := service.NewResourceService(resourceRepo, schoolRepo, validator)
	activityService := service.NewActivityService(versionRepo, schoolRepo, validator)
	assignmentService := service.NewAssignmentService(assignmentRepo, versionRepo, resourceRepo, validator)
	calendarService := service.NewCalendarService(schoolRepo, resourceRepo, versionRepo, assignmentRepo)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)
	authHandler := auth.NewAuthHandler(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	schoolHandler := handlers.NewSchoolHandler(schoolService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	activityHandler := handlers.NewActivityHandler(activityService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Token endpoints live outside the protected group: issuing a token is
	// what lets a caller reach it in the first place
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/token", authHandler.IssueToken)
		authRoutes.POST("/validate", authHandler.ValidateToken)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// School routes
		schools := v1.Group("/schools")
		{
			schools.GET("", schoolHandler.ListSchools)
			schools.POST("", schoolHandler.CreateSchool)
			schools.GET("/:id", schoolHandler.GetSchool)
			schools.GET("/:id/resources", resourceHandler.ListResourcesBySchool)
			schools.POST("/:id/resources", resourceHandler.CreateResource)
			schools.POST("/:id/activities", activityHandler.CreateActivity)
			schools.GET("/:id/calendar", calendarHandler.GetSchoolCalendar)
		}

		// Resource routes
		resources := v1.Group("/resources")
		{
			resources.GET("/:id", resourceHandler.GetResource)
		}

		// Activity routes
		activities := v1.Group("/activities")
		{
			activities.GET("/:id", activityHandler.GetActivity)
			activities.PUT("/:id", activityHandler.UpdateActivity)
			activities.GET("/:id/versions", activityHandler.ListActivityVersions)
			activities.PUT("/:id/assignments", assignmentHandler.SetAssignment)
			activities.GET("/:id/assignments/:date", assignmentHandler.GetAssignment)
		}

		// Calendar computation over an explicit activity set
		v1.POST("/calendar", calendarHandler.ComputeCalendar)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

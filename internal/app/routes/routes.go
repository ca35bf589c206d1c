package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lucasv/acadplan/internal/app/controllers"
	"github.com/lucasv/acadplan/internal/app/models/dto"
	"github.com/lucasv/acadplan/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Reading the collection and the summary is open; only mutations
	// require the owner session.
	v1.GET("/courses", courseController.ListCourses)
	v1.GET("/summary", courseController.GetSummary)

	// --- Owner-protected routes ---
	courses := v1.Group("/courses")
	courses.Use(authMiddleware.OwnerRequired())
	{
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}, ""))
	})
}

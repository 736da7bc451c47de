package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmcastillo/faculty-locator/internal/app/controllers"
	"github.com/jmcastillo/faculty-locator/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	instructorController *controllers.InstructorController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public routes ---
	router.GET("/", authController.Index)
	router.GET("/login", authController.LoginPage)
	router.POST("/login", authController.Login)
	router.GET("/logout", authController.Logout)

	// --- Session-protected routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.SessionRequired())
	{
		authenticated.GET("/select", authController.RoleSelect)

		student := authenticated.Group("/student")
		{
			student.GET("", studentController.Departments)
			student.GET("/department/:id", studentController.DepartmentDetail)
		}

		// Instructor self-service additionally requires the instructor role
		instructor := authenticated.Group("/instructor")
		instructor.Use(authMiddleware.InstructorRequired())
		{
			instructor.GET("", instructorController.Dashboard)
			instructor.POST("/status", instructorController.UpdateStatus)
			instructor.POST("/schedule", instructorController.AddSchedule)
		}
	}
}

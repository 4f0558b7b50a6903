package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ndthanh/studentms/internal/app/controllers"
	"github.com/ndthanh/studentms/internal/app/models"
	"github.com/ndthanh/studentms/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	classController *controllers.ClassController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/token", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticatedAuth := authenticated.Group("/auth")
		{
			authenticatedAuth.POST("/logout", authController.Logout)
			authenticatedAuth.POST("/change-password", authController.ChangePassword)
			authenticatedAuth.GET("/me", authController.Me)
		}

		// Class routes: any authenticated user may read, mutations are admin-only
		classes := authenticated.Group("/classes")
		{
			classes.GET("", classController.GetAllClasses)
			classes.GET("/:id", classController.GetClassByID)

			classesAdminProtected := classes.Group("")
			classesAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				classesAdminProtected.POST("", classController.CreateClass)
				classesAdminProtected.PUT("/:id", classController.UpdateClass)
				classesAdminProtected.DELETE("/:id", classController.DeleteClass)
			}
		}

		// Student routes. Reading a single profile is handled by the service so
		// a student can fetch their own record; everything else is admin-only.
		students := authenticated.Group("/students")
		{
			students.GET("/:id", studentController.GetStudentByID)

			studentsAdminProtected := students.Group("")
			studentsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				studentsAdminProtected.GET("", studentController.ListStudents)
				studentsAdminProtected.POST("", studentController.CreateStudent)
				studentsAdminProtected.PUT("/:id", studentController.UpdateStudent)
				studentsAdminProtected.DELETE("/:id", studentController.DeleteStudent)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

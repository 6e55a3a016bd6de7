// routes/job_routes.go
package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobera/jobportal_backend/controllers"
	"github.com/jobera/jobportal_backend/middleware"
	"github.com/jobera/jobportal_backend/models"
)

// RegisterJobRoutes sets up job board routes. Browsing and search are
// public; postings are managed by approved admins and superadmins.
func RegisterJobRoutes(e *echo.Echo, db *mongo.Client) {
	jobController := controllers.NewJobController(db)

	jobs := e.Group("/api/jobs")
	jobs.GET("", jobController.GetJobs)
	jobs.GET("/:id", jobController.GetJob)
	jobs.GET("/company/:companyId", jobController.GetJobsByCompany)
	jobs.GET("/category/:categoryId", jobController.GetJobsByCategory)

	manage := jobs.Group("")
	manage.Use(middleware.JWTMiddleware())
	manage.Use(middleware.RequireRole(db, models.RoleAdmin))
	manage.POST("", jobController.CreateJob)
	manage.PUT("/:id", jobController.UpdateJob)
	manage.DELETE("/:id", jobController.DeleteJob)
}

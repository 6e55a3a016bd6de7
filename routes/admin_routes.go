// routes/admin_routes.go
package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobera/jobportal_backend/controllers"
	"github.com/jobera/jobportal_backend/middleware"
	"github.com/jobera/jobportal_backend/models"
	"github.com/jobera/jobportal_backend/services"
)

// RegisterAdminRoutes sets up the superadmin review surface
func RegisterAdminRoutes(e *echo.Echo, db *mongo.Client, adminRequests *services.AdminRequestService) {
	adminController := controllers.NewAdminController(db, adminRequests)

	admin := e.Group("/api/admin")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.RequireRole(db, models.RoleSuperadmin))

	admin.GET("/requests/pending", adminController.GetPendingRequests)
	admin.GET("/requests", adminController.GetAllRequests)
	admin.PUT("/requests/:id/approve", adminController.ApproveRequest)
	admin.PUT("/requests/:id/reject", adminController.RejectRequest)
	admin.GET("/companies/:companyId/admins", adminController.GetAdminsByCompany)
	admin.GET("/stats", adminController.GetPlatformStats)
}

// routes/auth_routes.go
package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobera/jobportal_backend/controllers"
	"github.com/jobera/jobportal_backend/middleware"
	"github.com/jobera/jobportal_backend/services"
)

// RegisterAuthRoutes sets up account and session routes
func RegisterAuthRoutes(e *echo.Echo, db *mongo.Client, adminRequests *services.AdminRequestService) {
	authController := controllers.NewAuthController(db, adminRequests)

	auth := e.Group("/api/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)

	protected := auth.Group("")
	protected.Use(middleware.JWTMiddleware())
	protected.POST("/logout", authController.Logout)
	protected.PUT("/profile", authController.UpdateProfile)
	protected.POST("/request-admin", authController.RequestAdmin)
}

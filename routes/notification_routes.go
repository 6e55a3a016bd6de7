// routes/notification_routes.go
package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobera/jobportal_backend/controllers"
	"github.com/jobera/jobportal_backend/middleware"
)

// RegisterNotificationRoutes sets up per-user notification routes
func RegisterNotificationRoutes(e *echo.Echo, db *mongo.Client) {
	notificationController := controllers.NewNotificationController(db)

	notifications := e.Group("/api/notifications")
	notifications.Use(middleware.JWTMiddleware())

	notifications.GET("", notificationController.GetNotifications)
	notifications.PUT("/read-all", notificationController.MarkAllNotificationsRead)
	notifications.PUT("/:id/read", notificationController.MarkNotificationRead)
	notifications.DELETE("/:id", notificationController.DeleteNotification)
}

// routes/upload_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/jobera/jobportal_backend/controllers"
	"github.com/jobera/jobportal_backend/middleware"
)

// RegisterUploadRoutes sets up the file upload endpoint
func RegisterUploadRoutes(e *echo.Echo) {
	uploadController := controllers.NewUploadController()

	uploads := e.Group("/api/uploads")
	uploads.Use(middleware.JWTMiddleware())
	uploads.POST("", uploadController.UploadFile)
}

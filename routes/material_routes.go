// routes/material_routes.go
package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobera/jobportal_backend/controllers"
	"github.com/jobera/jobportal_backend/middleware"
	"github.com/jobera/jobportal_backend/models"
)

// RegisterMaterialRoutes sets up study material and certification routes.
// Authenticated users can browse; superadmins manage the content.
func RegisterMaterialRoutes(e *echo.Echo, db *mongo.Client) {
	materialController := controllers.NewMaterialController(db)

	materials := e.Group("/api/study-materials")
	materials.Use(middleware.JWTMiddleware())
	materials.GET("", materialController.GetStudyMaterials)

	manageMaterials := materials.Group("")
	manageMaterials.Use(middleware.RequireRole(db, models.RoleSuperadmin))
	manageMaterials.POST("", materialController.CreateStudyMaterial)
	manageMaterials.DELETE("/:id", materialController.DeleteStudyMaterial)

	certifications := e.Group("/api/certifications")
	certifications.Use(middleware.JWTMiddleware())
	certifications.GET("", materialController.GetCertifications)

	manageCertifications := certifications.Group("")
	manageCertifications.Use(middleware.RequireRole(db, models.RoleSuperadmin))
	manageCertifications.POST("", materialController.CreateCertification)
	manageCertifications.DELETE("/:id", materialController.DeleteCertification)
}

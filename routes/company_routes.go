// routes/company_routes.go
package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobera/jobportal_backend/controllers"
	"github.com/jobera/jobportal_backend/middleware"
	"github.com/jobera/jobportal_backend/models"
)

// RegisterCompanyRoutes sets up the company registry routes. Reads require
// authentication; the full listing and deletion are superadmin-only.
func RegisterCompanyRoutes(e *echo.Echo, db *mongo.Client) {
	companyController := controllers.NewCompanyController(db)

	companies := e.Group("/api/companies")
	companies.Use(middleware.JWTMiddleware())
	companies.GET("/:id", companyController.GetCompany)

	manage := companies.Group("")
	manage.Use(middleware.RequireRole(db, models.RoleAdmin))
	manage.POST("", companyController.CreateCompany)
	manage.PUT("/:id", companyController.UpdateCompany)

	super := companies.Group("")
	super.Use(middleware.RequireRole(db, models.RoleSuperadmin))
	super.GET("", companyController.GetAllCompanies)
	super.DELETE("/:id", companyController.DeleteCompany)
}

// routes/category_routes.go
package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobera/jobportal_backend/controllers"
	"github.com/jobera/jobportal_backend/middleware"
	"github.com/jobera/jobportal_backend/models"
)

// RegisterCategoryRoutes sets up the category taxonomy routes. Reads are
// public; the taxonomy itself is superadmin-managed.
func RegisterCategoryRoutes(e *echo.Echo, db *mongo.Client) {
	categoryController := controllers.NewCategoryController(db)

	categories := e.Group("/api/categories")
	categories.GET("", categoryController.GetCategories)
	categories.GET("/:id", categoryController.GetCategory)

	manage := categories.Group("")
	manage.Use(middleware.JWTMiddleware())
	manage.Use(middleware.RequireRole(db, models.RoleSuperadmin))
	manage.POST("", categoryController.CreateCategory)
	manage.PUT("/:id", categoryController.UpdateCategory)
	manage.DELETE("/:id", categoryController.DeleteCategory)
}

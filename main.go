package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/jobera/jobportal_backend/config"
	"github.com/jobera/jobportal_backend/middleware"
	"github.com/jobera/jobportal_backend/repositories"
	"github.com/jobera/jobportal_backend/routes"
	"github.com/jobera/jobportal_backend/services"
	"github.com/jobera/jobportal_backend/utils"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to Redis
	config.ConnectRedis()

	// Connect to database
	client := config.ConnectDB()

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeaders())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Job Portal Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Initialize repositories and the admin-elevation workflow
	userRepo := repositories.NewUserRepository(client)
	companyRepo := repositories.NewCompanyRepository(client)
	adminRequestRepo := repositories.NewAdminRequestRepository(client)
	adminRequestService := services.NewAdminRequestService(userRepo, companyRepo, adminRequestRepo)

	// Register routes
	routes.RegisterAuthRoutes(e, client, adminRequestService)
	routes.RegisterAdminRoutes(e, client, adminRequestService)
	routes.RegisterCompanyRoutes(e, client)
	routes.RegisterJobRoutes(e, client)
	routes.RegisterCategoryRoutes(e, client)
	routes.RegisterMaterialRoutes(e, client)
	routes.RegisterNotificationRoutes(e, client)
	routes.RegisterUploadRoutes(e)

	// Ensure uploads directories exist and serve them
	if err := utils.InitializeStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	e.Static("/uploads", "uploads")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

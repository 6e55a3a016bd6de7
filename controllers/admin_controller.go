package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobera/jobportal_backend/apperrors"
	"github.com/jobera/jobportal_backend/config"
	"github.com/jobera/jobportal_backend/middleware"
	"github.com/jobera/jobportal_backend/models"
	"github.com/jobera/jobportal_backend/services"
	"github.com/jobera/jobportal_backend/utils"
)

// AdminController exposes the superadmin review surface: request listings,
// approve/reject decisions, admins-by-company and platform stats.
type AdminController struct {
	DB            *mongo.Client
	adminRequests *services.AdminRequestService
}

// NewAdminController creates a new admin controller
func NewAdminController(db *mongo.Client, adminRequests *services.AdminRequestService) *AdminController {
	return &AdminController{DB: db, adminRequests: adminRequests}
}

// userSummary mirrors the original populate('user', 'name email') projection
type userSummary struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email,omitempty"`
}

// companySummary mirrors populate('company', 'name location')
type companySummary struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Location string             `json:"location,omitempty"`
}

// enrichRequests attaches requester/company/reviewer summaries to each
// request for display.
func (ac *AdminController) enrichRequests(ctx context.Context, requests []models.AdminRequest) []map[string]interface{} {
	users := config.GetCollection(ac.DB, "users")
	companies := config.GetCollection(ac.DB, "companies")

	enriched := make([]map[string]interface{}, 0, len(requests))
	for _, req := range requests {
		item := map[string]interface{}{
			"request": req,
		}

		var user models.User
		if err := users.FindOne(ctx, bson.M{"_id": req.User}).Decode(&user); err == nil {
			item["user"] = userSummary{ID: user.ID, Name: user.Name, Email: user.Email}
		}

		var company models.Company
		if err := companies.FindOne(ctx, bson.M{"_id": req.Company}).Decode(&company); err == nil {
			item["company"] = companySummary{ID: company.ID, Name: company.Name, Location: company.Location}
		}

		if req.ReviewedBy != nil {
			var reviewer models.User
			if err := users.FindOne(ctx, bson.M{"_id": *req.ReviewedBy}).Decode(&reviewer); err == nil {
				item["reviewedBy"] = userSummary{ID: reviewer.ID, Name: reviewer.Name}
			}
		}

		enriched = append(enriched, item)
	}
	return enriched
}

// GetPendingRequests lists pending admin requests, newest first
func (ac *AdminController) GetPendingRequests(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	requests, err := ac.adminRequests.List(ctx, models.RequestStatusPending)
	if err != nil {
		return c.JSON(apperrors.HTTPStatus(err), models.Response{
			Status:  apperrors.HTTPStatus(err),
			Message: apperrors.Message(err),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Pending admin requests retrieved successfully",
		Data: map[string]interface{}{
			"count":    len(requests),
			"requests": ac.enrichRequests(ctx, requests),
		},
	})
}

// GetAllRequests lists admin requests of any status; ?status= filters by
// exact match.
func (ac *AdminController) GetAllRequests(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	requests, err := ac.adminRequests.List(ctx, c.QueryParam("status"))
	if err != nil {
		return c.JSON(apperrors.HTTPStatus(err), models.Response{
			Status:  apperrors.HTTPStatus(err),
			Message: apperrors.Message(err),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Admin requests retrieved successfully",
		Data: map[string]interface{}{
			"count":    len(requests),
			"requests": ac.enrichRequests(ctx, requests),
		},
	})
}

// ApproveRequest approves a pending admin request and promotes the requester
func (ac *AdminController) ApproveRequest(c echo.Context) error {
	return ac.processRequest(c, models.RequestStatusApproved)
}

// RejectRequest rejects a pending admin request
func (ac *AdminController) RejectRequest(c echo.Context) error {
	return ac.processRequest(c, models.RequestStatusRejected)
}

func (ac *AdminController) processRequest(c echo.Context, decision string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reviewer := middleware.CurrentUser(c)
	if reviewer == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Not authenticated",
		})
	}

	var input models.ReviewInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var request *models.AdminRequest
	var err error
	if decision == models.RequestStatusApproved {
		request, err = ac.adminRequests.Approve(ctx, c.Param("id"), reviewer.ID, utils.SanitizeInput(input.ReviewMessage))
	} else {
		request, err = ac.adminRequests.Reject(ctx, c.Param("id"), reviewer.ID, utils.SanitizeInput(input.ReviewMessage))
	}
	if err != nil {
		return c.JSON(apperrors.HTTPStatus(err), models.Response{
			Status:  apperrors.HTTPStatus(err),
			Message: apperrors.Message(err),
		})
	}

	go utils.NotifyAdminRequestDecision(ac.DB, request)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Admin request " + decision + " successfully",
		Data:    request,
	})
}

// GetAdminsByCompany lists approved admins bound to a company
func (ac *AdminController) GetAdminsByCompany(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	companyID, err := primitive.ObjectIDFromHex(c.Param("companyId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid company ID format",
		})
	}

	filter := bson.M{
		"company":       companyID,
		"role":          models.RoleAdmin,
		"adminApproved": true,
	}
	opts := options.Find().SetProjection(bson.M{"password": 0})

	cursor, err := config.GetCollection(ac.DB, "users").Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve admins",
		})
	}
	defer cursor.Close(ctx)

	var admins []models.User
	if err = cursor.All(ctx, &admins); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode admins",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Company admins retrieved successfully",
		Data: map[string]interface{}{
			"count":  len(admins),
			"admins": admins,
		},
	})
}

// GetPlatformStats returns counts for the superadmin dashboard
func (ac *AdminController) GetPlatformStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	totalUsers, err := config.GetCollection(ac.DB, "users").CountDocuments(ctx, bson.M{"role": models.RoleUser})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count users",
		})
	}

	totalJobs, err := config.GetCollection(ac.DB, "jobs").CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count jobs",
		})
	}

	totalCategories, err := config.GetCollection(ac.DB, "categories").CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count categories",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Platform stats retrieved successfully",
		Data: map[string]interface{}{
			"users":      totalUsers,
			"jobs":       totalJobs,
			"categories": totalCategories,
		},
	})
}

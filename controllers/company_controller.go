package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobera/jobportal_backend/config"
	"github.com/jobera/jobportal_backend/middleware"
	"github.com/jobera/jobportal_backend/models"
	"github.com/jobera/jobportal_backend/utils"
)

// CompanyController handles company registry CRUD
type CompanyController struct {
	DB *mongo.Client
}

// NewCompanyController creates a new company controller
func NewCompanyController(db *mongo.Client) *CompanyController {
	return &CompanyController{DB: db}
}

// CreateCompany registers a new company. Names are unique.
func (cc *CompanyController) CreateCompany(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.CompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	collection := config.GetCollection(cc.DB, "companies")

	count, err := collection.CountDocuments(ctx, bson.M{"name": req.Name})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to check existing companies",
		})
	}
	if count > 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Company with this name already exists",
		})
	}

	now := time.Now()
	company := models.Company{
		ID:          primitive.NewObjectID(),
		Name:        utils.SanitizeInput(req.Name),
		Description: utils.SanitizeInput(req.Description),
		Location:    utils.SanitizeInput(req.Location),
		Website:     req.Website,
		Industry:    utils.SanitizeInput(req.Industry),
		Size:        req.Size,
		Logo:        req.Logo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := collection.InsertOne(ctx, company); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create company",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Company created successfully",
		Data:    company,
	})
}

// GetAllCompanies lists every company
func (cc *CompanyController) GetAllCompanies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(cc.DB, "companies").Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve companies",
		})
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	if err = cursor.All(ctx, &companies); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode companies",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Companies retrieved successfully",
		Data: map[string]interface{}{
			"count":     len(companies),
			"companies": companies,
		},
	})
}

// GetCompany returns a single company by id
func (cc *CompanyController) GetCompany(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	companyID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid company ID format",
		})
	}

	var company models.Company
	err = config.GetCollection(cc.DB, "companies").FindOne(ctx, bson.M{"_id": companyID}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Company not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve company",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Company retrieved successfully",
		Data:    company,
	})
}

// UpdateCompany updates a company. Superadmins may update any company; an
// admin only their own.
func (cc *CompanyController) UpdateCompany(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	companyID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid company ID format",
		})
	}

	caller := middleware.CurrentUser(c)
	if caller == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Not authenticated",
		})
	}

	callerCompany := ""
	if caller.Company != nil {
		callerCompany = caller.Company.Hex()
	}
	if !middleware.AuthorizeCompany(caller.Role, callerCompany, companyID.Hex()) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Not authorized to update this company",
		})
	}

	var req models.CompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		update["name"] = utils.SanitizeInput(req.Name)
	}
	if req.Description != "" {
		update["description"] = utils.SanitizeInput(req.Description)
	}
	if req.Location != "" {
		update["location"] = utils.SanitizeInput(req.Location)
	}
	if req.Website != "" {
		update["website"] = req.Website
	}
	if req.Industry != "" {
		update["industry"] = utils.SanitizeInput(req.Industry)
	}
	if req.Size != "" {
		update["size"] = req.Size
	}
	if req.Logo != "" {
		update["logo"] = req.Logo
	}

	collection := config.GetCollection(cc.DB, "companies")
	result, err := collection.UpdateOne(ctx, bson.M{"_id": companyID}, bson.M{"$set": update})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update company",
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Company not found",
		})
	}

	var company models.Company
	if err := collection.FindOne(ctx, bson.M{"_id": companyID}).Decode(&company); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load updated company",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Company updated successfully",
		Data:    company,
	})
}

// DeleteCompany removes a company
func (cc *CompanyController) DeleteCompany(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	companyID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid company ID format",
		})
	}

	result, err := config.GetCollection(cc.DB, "companies").DeleteOne(ctx, bson.M{"_id": companyID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete company",
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Company not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Company removed successfully",
	})
}

package controllers

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobera/jobportal_backend/config"
	"github.com/jobera/jobportal_backend/middleware"
	"github.com/jobera/jobportal_backend/models"
	"github.com/jobera/jobportal_backend/utils"
)

// CategoryController manages the job category taxonomy
type CategoryController struct {
	DB *mongo.Client
}

// NewCategoryController creates a new category controller
func NewCategoryController(db *mongo.Client) *CategoryController {
	return &CategoryController{DB: db}
}

// nameFilter matches a category name case-insensitively
func nameFilter(name string) bson.M {
	return bson.M{"name": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(name) + "$",
		"$options": "i",
	}}
}

// CreateCategory adds a category. Names are unique regardless of case.
func (cc *CategoryController) CreateCategory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	creator := middleware.CurrentUser(c)
	if creator == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Not authenticated",
		})
	}

	var req models.CategoryRequest
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

	name := utils.SanitizeInput(req.Name)
	collection := config.GetCollection(cc.DB, "categories")

	count, err := collection.CountDocuments(ctx, nameFilter(name))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to check existing categories",
		})
	}
	if count > 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Category with this name already exists",
		})
	}

	now := time.Now()
	category := models.Category{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: utils.SanitizeInput(req.Description),
		IsActive:    true,
		CreatedBy:   creator.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if _, err := collection.InsertOne(ctx, category); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create category",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Category created successfully",
		Data:    category,
	})
}

// GetCategories lists categories sorted by name. By default only active
// categories are returned; ?all=true includes inactive ones.
func (cc *CategoryController) GetCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"isActive": true}
	if c.QueryParam("all") == "true" {
		filter = bson.M{}
	}

	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := config.GetCollection(cc.DB, "categories").Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve categories",
		})
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode categories",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Categories retrieved successfully",
		Data: map[string]interface{}{
			"count":      len(categories),
			"categories": categories,
		},
	})
}

// GetCategory returns a single category by id
func (cc *CategoryController) GetCategory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categoryID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid category ID format",
		})
	}

	var category models.Category
	err = config.GetCollection(cc.DB, "categories").FindOne(ctx, bson.M{"_id": categoryID}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Category not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve category",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Category retrieved successfully",
		Data:    category,
	})
}

// UpdateCategory updates a category's name, description or active flag
func (cc *CategoryController) UpdateCategory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categoryID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid category ID format",
		})
	}

	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	collection := config.GetCollection(cc.DB, "categories")

	update := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		name := utils.SanitizeInput(req.Name)

		// another category may not already hold this name
		filter := nameFilter(name)
		filter["_id"] = bson.M{"$ne": categoryID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to check existing categories",
			})
		}
		if count > 0 {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Category with this name already exists",
			})
		}
		update["name"] = name
	}
	if req.Description != "" {
		update["description"] = utils.SanitizeInput(req.Description)
	}
	if req.IsActive != nil {
		update["isActive"] = *req.IsActive
	}

	var category models.Category
	err = collection.FindOneAndUpdate(ctx,
		bson.M{"_id": categoryID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Category not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update category",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Category updated successfully",
		Data:    category,
	})
}

// DeleteCategory deactivates a category. Categories referenced by jobs are
// never hard deleted; the soft delete keeps existing jobs resolvable.
func (cc *CategoryController) DeleteCategory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categoryID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid category ID format",
		})
	}

	jobCount, err := config.GetCollection(cc.DB, "jobs").CountDocuments(ctx, bson.M{"category": categoryID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to check category usage",
		})
	}

	collection := config.GetCollection(cc.DB, "categories")

	if jobCount > 0 {
		result, err := collection.UpdateOne(ctx,
			bson.M{"_id": categoryID},
			bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}},
		)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to deactivate category",
			})
		}
		if result.MatchedCount == 0 {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Category not found",
			})
		}
		return c.JSON(http.StatusOK, models.Response{
			Status:  http.StatusOK,
			Message: "Category is in use by jobs and has been deactivated instead",
		})
	}

	result, err := collection.DeleteOne(ctx, bson.M{"_id": categoryID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete category",
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Category not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Category removed successfully",
	})
}

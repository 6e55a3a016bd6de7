package controllers

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobera/jobportal_backend/config"
	"github.com/jobera/jobportal_backend/models"
	"github.com/jobera/jobportal_backend/utils"
)

const jobPageSize = 10

// JobController handles job-listing CRUD and search
type JobController struct {
	DB *mongo.Client
}

// NewJobController creates a new job controller
func NewJobController(db *mongo.Client) *JobController {
	return &JobController{DB: db}
}

// GetJobs lists jobs newest-first with keyword search, category filter and
// fixed-size pagination.
func (jc *JobController) GetJobs(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	filter := bson.M{}
	if keyword := c.QueryParam("keyword"); keyword != "" {
		pattern := regexp.QuoteMeta(keyword)
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	if category := c.QueryParam("category"); category != "" {
		categoryID, err := primitive.ObjectIDFromHex(category)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid category ID format",
			})
		}
		filter["category"] = categoryID
	}

	collection := config.GetCollection(jc.DB, "jobs")

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count jobs",
		})
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(jobPageSize * (page - 1))).
		SetLimit(jobPageSize)

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve jobs",
		})
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err = cursor.All(ctx, &jobs); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode jobs",
		})
	}

	pages := int((total + jobPageSize - 1) / jobPageSize)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Jobs retrieved successfully",
		Data: models.JobList{
			Jobs:  jobs,
			Page:  page,
			Pages: pages,
			Total: total,
		},
	})
}

// GetJob returns a single job by id
func (jc *JobController) GetJob(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jobID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid job ID format",
		})
	}

	var job models.Job
	err = config.GetCollection(jc.DB, "jobs").FindOne(ctx, bson.M{"_id": jobID}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Job not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve job",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Job retrieved successfully",
		Data:    job,
	})
}

// GetJobsByCompany lists all jobs for a company, newest first
func (jc *JobController) GetJobsByCompany(c echo.Context) error {
	return jc.listJobsBy(c, "company", c.Param("companyId"))
}

// GetJobsByCategory lists all jobs in a category, newest first
func (jc *JobController) GetJobsByCategory(c echo.Context) error {
	return jc.listJobsBy(c, "category", c.Param("categoryId"))
}

func (jc *JobController) listJobsBy(c echo.Context, field, idHex string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid ID format",
		})
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := config.GetCollection(jc.DB, "jobs").Find(ctx, bson.M{field: id}, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve jobs",
		})
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err = cursor.All(ctx, &jobs); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode jobs",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Jobs retrieved successfully",
		Data: map[string]interface{}{
			"count": len(jobs),
			"jobs":  jobs,
		},
	})
}

// CreateJob posts a new job listing. The category must exist and be active.
func (jc *JobController) CreateJob(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Not authenticated",
		})
	}

	var req models.JobRequest
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

	companyID, err := primitive.ObjectIDFromHex(req.Company)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid company ID format",
		})
	}
	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid category ID format",
		})
	}

	if ok, err := jc.checkActiveCategory(c, ctx, categoryID); !ok {
		return err
	}

	now := time.Now()
	job := models.Job{
		ID:             primitive.NewObjectID(),
		User:           userID,
		Title:          utils.SanitizeInput(req.Title),
		Company:        companyID,
		Category:       categoryID,
		Location:       utils.SanitizeInput(req.Location),
		Description:    utils.SanitizeInput(req.Description),
		Salary:         req.Salary,
		Tags:           req.Tags,
		ApplicationURL: req.ApplicationURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := config.GetCollection(jc.DB, "jobs").InsertOne(ctx, job); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create job",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Job created successfully",
		Data:    job,
	})
}

// UpdateJob updates fields of an existing job
func (jc *JobController) UpdateJob(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jobID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid job ID format",
		})
	}

	var req models.JobUpdateRequest
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

	update := bson.M{"updatedAt": time.Now()}
	if req.Title != "" {
		update["title"] = utils.SanitizeInput(req.Title)
	}
	if req.Company != "" {
		companyID, err := primitive.ObjectIDFromHex(req.Company)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid company ID format",
			})
		}
		update["company"] = companyID
	}
	if req.Category != "" {
		categoryID, err := primitive.ObjectIDFromHex(req.Category)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid category ID format",
			})
		}
		if ok, err := jc.checkActiveCategory(c, ctx, categoryID); !ok {
			return err
		}
		update["category"] = categoryID
	}
	if req.Location != "" {
		update["location"] = utils.SanitizeInput(req.Location)
	}
	if req.Description != "" {
		update["description"] = utils.SanitizeInput(req.Description)
	}
	if req.Salary > 0 {
		update["salary"] = req.Salary
	}
	if req.Tags != nil {
		update["tags"] = req.Tags
	}
	if req.ApplicationURL != "" {
		update["applicationUrl"] = req.ApplicationURL
	}

	collection := config.GetCollection(jc.DB, "jobs")
	result, err := collection.UpdateOne(ctx, bson.M{"_id": jobID}, bson.M{"$set": update})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update job",
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Job not found",
		})
	}

	var job models.Job
	if err := collection.FindOne(ctx, bson.M{"_id": jobID}).Decode(&job); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load updated job",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Job updated successfully",
		Data:    job,
	})
}

// DeleteJob removes a job listing
func (jc *JobController) DeleteJob(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jobID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid job ID format",
		})
	}

	result, err := config.GetCollection(jc.DB, "jobs").DeleteOne(ctx, bson.M{"_id": jobID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete job",
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Job not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Job removed successfully",
	})
}

// checkActiveCategory verifies the category exists and is active. When it
// does not, the error response is written and ok is false.
func (jc *JobController) checkActiveCategory(c echo.Context, ctx context.Context, categoryID primitive.ObjectID) (bool, error) {
	var category models.Category
	err := config.GetCollection(jc.DB, "categories").FindOne(ctx, bson.M{"_id": categoryID}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Category not found",
			})
		}
		return false, c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to verify category",
		})
	}
	if !category.IsActive {
		return false, c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "This category is not active",
		})
	}
	return true, nil
}

package controllers

import (
	"context"
	"net/http"
	"path"
	"strings"
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

// MaterialController manages study materials and certifications
type MaterialController struct {
	DB *mongo.Client
}

// NewMaterialController creates a new material controller
func NewMaterialController(db *mongo.Client) *MaterialController {
	return &MaterialController{DB: db}
}

// inferMaterialType maps a file URL to a material type by extension
func inferMaterialType(fileURL string) string {
	ext := strings.ToLower(path.Ext(fileURL))
	switch ext {
	case ".pdf":
		return models.MaterialTypePDF
	case ".mp4", ".webm", ".mov", ".avi":
		return models.MaterialTypeVideo
	case ".jpg", ".jpeg", ".png", ".gif":
		return models.MaterialTypeImage
	case "":
		return models.MaterialTypeLink
	default:
		return models.MaterialTypeOther
	}
}

// CreateStudyMaterial records a study material. The type is inferred from
// the file URL when not given explicitly.
func (mc *MaterialController) CreateStudyMaterial(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploader := middleware.CurrentUser(c)
	if uploader == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Not authenticated",
		})
	}

	var req models.StudyMaterialRequest
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

	materialType := req.Type
	if materialType == "" {
		materialType = inferMaterialType(req.FileURL)
	}

	material := models.StudyMaterial{
		ID:          primitive.NewObjectID(),
		Title:       utils.SanitizeInput(req.Title),
		Description: utils.SanitizeInput(req.Description),
		FileURL:     req.FileURL,
		Type:        materialType,
		UploadedBy:  uploader.ID,
		CreatedAt:   time.Now(),
	}

	if _, err := config.GetCollection(mc.DB, "studyMaterials").InsertOne(ctx, material); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create study material",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Study material created successfully",
		Data:    material,
	})
}

// GetStudyMaterials lists study materials, newest first. ?type= filters by
// material type.
func (mc *MaterialController) GetStudyMaterials(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if materialType := c.QueryParam("type"); materialType != "" {
		filter["type"] = materialType
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := config.GetCollection(mc.DB, "studyMaterials").Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve study materials",
		})
	}
	defer cursor.Close(ctx)

	var materials []models.StudyMaterial
	if err = cursor.All(ctx, &materials); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode study materials",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Study materials retrieved successfully",
		Data: map[string]interface{}{
			"count":     len(materials),
			"materials": materials,
		},
	})
}

// DeleteStudyMaterial removes a study material
func (mc *MaterialController) DeleteStudyMaterial(c echo.Context) error {
	return mc.deleteByID(c, "studyMaterials", "Study material")
}

// CreateCertification records a certification from an uploaded file or an
// external link. Multipart requests carry the file under "file"; JSON
// requests give "fileUrl" directly.
func (mc *MaterialController) CreateCertification(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploader := middleware.CurrentUser(c)
	if uploader == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Not authenticated",
		})
	}

	title := utils.SanitizeInput(c.FormValue("title"))
	fileURL := c.FormValue("fileUrl")

	if file, err := c.FormFile("file"); err == nil {
		fileURL, err = utils.SaveUploadedFile(file)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		}
	} else if fileURL == "" || title == "" {
		// fall back to a JSON body
		var req struct {
			Title   string `json:"title"`
			FileURL string `json:"fileUrl"`
		}
		if err := c.Bind(&req); err == nil {
			if title == "" {
				title = utils.SanitizeInput(req.Title)
			}
			if fileURL == "" {
				fileURL = req.FileURL
			}
		}
	}

	if title == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Title is required",
		})
	}
	if fileURL == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "A file or fileUrl is required",
		})
	}

	certification := models.Certification{
		ID:         primitive.NewObjectID(),
		Title:      title,
		FileURL:    fileURL,
		UploadedBy: uploader.ID,
		CreatedAt:  time.Now(),
	}

	if _, err := config.GetCollection(mc.DB, "certifications").InsertOne(ctx, certification); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create certification",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Certification created successfully",
		Data:    certification,
	})
}

// GetCertifications lists certifications, newest first
func (mc *MaterialController) GetCertifications(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := config.GetCollection(mc.DB, "certifications").Find(ctx, bson.M{}, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve certifications",
		})
	}
	defer cursor.Close(ctx)

	var certifications []models.Certification
	if err = cursor.All(ctx, &certifications); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode certifications",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Certifications retrieved successfully",
		Data: map[string]interface{}{
			"count":          len(certifications),
			"certifications": certifications,
		},
	})
}

// DeleteCertification removes a certification
func (mc *MaterialController) DeleteCertification(c echo.Context) error {
	return mc.deleteByID(c, "certifications", "Certification")
}

func (mc *MaterialController) deleteByID(c echo.Context, collectionName, label string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid ID format",
		})
	}

	result, err := config.GetCollection(mc.DB, collectionName).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete " + strings.ToLower(label),
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: label + " not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: label + " removed successfully",
	})
}

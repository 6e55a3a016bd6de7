package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobera/jobportal_backend/models"
	"github.com/jobera/jobportal_backend/utils"
)

// UploadController stores files on local disk and hands back their URLs
type UploadController struct{}

// NewUploadController creates a new upload controller
func NewUploadController() *UploadController {
	return &UploadController{}
}

// UploadFile accepts a multipart file under "file", stores it and returns
// its public URL. Images additionally get a thumbnail.
func (uc *UploadController) UploadFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "No file provided",
		})
	}

	fileURL, err := utils.SaveUploadedFile(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	data := map[string]interface{}{
		"fileUrl":  fileURL,
		"filename": file.Filename,
		"size":     file.Size,
	}

	if utils.IsImageFile(file.Filename) {
		thumbURL, err := utils.GenerateThumbnail(fileURL)
		if err != nil {
			c.Logger().Errorf("Failed to generate thumbnail: %v", err)
		} else {
			data["thumbnailUrl"] = thumbURL
		}
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "File uploaded successfully",
		Data:    data,
	})
}

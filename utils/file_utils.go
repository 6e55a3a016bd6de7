// utils/file_utils.go
package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// Base directory for storing uploaded files
	uploadBaseDir = "uploads"
	// Base URL for serving files
	baseURL = "/uploads"
	// Maximum file size (10MB)
	MaxFileSize = 10 * 1024 * 1024
	// Thumbnail width in pixels
	thumbnailWidth = 200
)

var (
	// Allowed document extensions for resumes and certifications
	allowedDocExts = map[string]bool{
		".pdf":  true,
		".doc":  true,
		".docx": true,
	}
	// Allowed image extensions
	allowedImageExts = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
	}

	filenameReg = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
)

// cleanFilename removes any potentially dangerous characters from the filename
func cleanFilename(filename string) string {
	filename = filepath.Base(filename)
	return filenameReg.ReplaceAllString(filename, "")
}

// IsImageFile reports whether the filename carries an allowed image extension
func IsImageFile(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// ValidateUploadType checks the file extension against the upload allowlist
func ValidateUploadType(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if allowedDocExts[ext] || allowedImageExts[ext] {
		return nil
	}
	return fmt.Errorf("unsupported file type %q. Allowed: pdf, doc, docx, jpg, jpeg, png, gif", ext)
}

// InitializeStorage creates necessary directories for file storage
func InitializeStorage() error {
	for _, dir := range []string{uploadBaseDir, filepath.Join(uploadBaseDir, "thumbnails")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s directory: %v", dir, err)
		}
	}
	return nil
}

// SaveUploadedFile stores a multipart file under uploads/ with a generated
// name and returns its public URL.
func SaveUploadedFile(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxFileSize {
		return "", fmt.Errorf("file too large: %d bytes (max %d)", file.Size, MaxFileSize)
	}
	if err := ValidateUploadType(file.Filename); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(cleanFilename(file.Filename)))
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(uploadBaseDir, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %v", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return baseURL + "/" + storedName, nil
}

// GenerateThumbnail writes a scaled-down copy of a stored image and returns
// the thumbnail URL. fileURL must be a URL returned by SaveUploadedFile.
func GenerateThumbnail(fileURL string) (string, error) {
	storedName := filepath.Base(fileURL)
	srcPath := filepath.Join(uploadBaseDir, storedName)

	img, err := imaging.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %v", err)
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	thumbName := strings.TrimSuffix(storedName, filepath.Ext(storedName)) + "_thumb.jpg"
	thumbPath := filepath.Join(uploadBaseDir, "thumbnails", thumbName)

	if err := imaging.Save(thumb, thumbPath); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %v", err)
	}

	return baseURL + "/thumbnails/" + thumbName, nil
}

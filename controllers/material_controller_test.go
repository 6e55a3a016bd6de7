package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobera/jobportal_backend/models"
)

func TestInferMaterialType(t *testing.T) {
	tests := []struct {
		fileURL string
		want    string
	}{
		{"/uploads/guide.pdf", models.MaterialTypePDF},
		{"https://cdn.example.com/intro.mp4", models.MaterialTypeVideo},
		{"/uploads/lesson.webm", models.MaterialTypeVideo},
		{"/uploads/diagram.png", models.MaterialTypeImage},
		{"/uploads/photo.JPG", models.MaterialTypeImage},
		{"https://example.com/course", models.MaterialTypeLink},
		{"/uploads/archive.zip", models.MaterialTypeOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, inferMaterialType(tt.fileURL), tt.fileURL)
	}
}

// models/study_material.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MaterialTypePDF   = "pdf"
	MaterialTypeVideo = "video"
	MaterialTypeLink  = "link"
	MaterialTypeImage = "image"
	MaterialTypeOther = "other"
)

type StudyMaterial struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	FileURL     string             `json:"fileUrl" bson:"fileUrl"`
	Type        string             `json:"type" bson:"type"`
	UploadedBy  primitive.ObjectID `json:"uploadedBy" bson:"uploadedBy"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// StudyMaterialRequest is the body for creating a study material
type StudyMaterialRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	FileURL     string `json:"fileUrl" validate:"required,url"`
	Type        string `json:"type,omitempty" validate:"omitempty,oneof=pdf video link image other"`
}

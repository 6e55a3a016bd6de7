// models/certification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Certification struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title      string             `json:"title" bson:"title"`
	FileURL    string             `json:"fileUrl" bson:"fileUrl"`
	UploadedBy primitive.ObjectID `json:"uploadedBy" bson:"uploadedBy"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// models/company.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Company struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string              `json:"name" bson:"name"`
	Description string              `json:"description" bson:"description"`
	Location    string              `json:"location" bson:"location"`
	Website     string              `json:"website,omitempty" bson:"website,omitempty"`
	Industry    string              `json:"industry,omitempty" bson:"industry,omitempty"`
	Size        string              `json:"size,omitempty" bson:"size,omitempty"`
	Logo        string              `json:"logo,omitempty" bson:"logo,omitempty"`
	Admin       *primitive.ObjectID `json:"admin,omitempty" bson:"admin,omitempty"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// CompanyRequest is the body for creating or updating a company
type CompanyRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	Industry    string `json:"industry,omitempty"`
	Size        string `json:"size,omitempty" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 501-1000 1000+"`
	Logo        string `json:"logo,omitempty" validate:"omitempty,uri"`
}

// models/job.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Job struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	User           primitive.ObjectID `json:"user" bson:"user"`
	Title          string             `json:"title" bson:"title"`
	Company        primitive.ObjectID `json:"company" bson:"company"`
	Category       primitive.ObjectID `json:"category" bson:"category"`
	Location       string             `json:"location" bson:"location"`
	Description    string             `json:"description" bson:"description"`
	Salary         float64            `json:"salary" bson:"salary"`
	Tags           []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	ApplicationURL string             `json:"applicationUrl,omitempty" bson:"applicationUrl,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// JobRequest is the body for creating a job
type JobRequest struct {
	Title          string   `json:"title" validate:"required"`
	Company        string   `json:"company" validate:"required,len=24,hexadecimal"`
	Category       string   `json:"category" validate:"required,len=24,hexadecimal"`
	Location       string   `json:"location" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Salary         float64  `json:"salary" validate:"required,gt=0"`
	Tags           []string `json:"tags,omitempty"`
	ApplicationURL string   `json:"applicationUrl,omitempty" validate:"omitempty,url"`
}

// JobUpdateRequest is the body for updating a job; zero fields are left untouched
type JobUpdateRequest struct {
	Title          string   `json:"title,omitempty"`
	Company        string   `json:"company,omitempty" validate:"omitempty,len=24,hexadecimal"`
	Category       string   `json:"category,omitempty" validate:"omitempty,len=24,hexadecimal"`
	Location       string   `json:"location,omitempty"`
	Description    string   `json:"description,omitempty"`
	Salary         float64  `json:"salary,omitempty" validate:"omitempty,gt=0"`
	Tags           []string `json:"tags,omitempty"`
	ApplicationURL string   `json:"applicationUrl,omitempty" validate:"omitempty,url"`
}

// JobList carries one page of job listings
type JobList struct {
	Jobs  []Job `json:"jobs"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Total int64 `json:"total"`
}

// models/admin_request.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin request lifecycle: pending transitions exactly once to approved or
// rejected and never leaves a terminal state.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// AdminRequest links a user to the company they want to administer.
type AdminRequest struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	User          primitive.ObjectID  `json:"user" bson:"user"`
	Company       primitive.ObjectID  `json:"company" bson:"company"`
	Message       string              `json:"message,omitempty" bson:"message,omitempty"`
	Status        string              `json:"status" bson:"status"`
	ReviewedBy    *primitive.ObjectID `json:"reviewedBy,omitempty" bson:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time          `json:"reviewedAt,omitempty" bson:"reviewedAt,omitempty"`
	ReviewMessage string              `json:"reviewMessage,omitempty" bson:"reviewMessage,omitempty"`
	CreatedAt     time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// AdminRequestInput is the body for POST /api/auth/request-admin
type AdminRequestInput struct {
	CompanyID string `json:"companyId" validate:"required,len=24,hexadecimal"`
	Message   string `json:"message,omitempty"`
}

// ReviewInput is the body for approve/reject endpoints
type ReviewInput struct {
	ReviewMessage string `json:"reviewMessage,omitempty"`
}

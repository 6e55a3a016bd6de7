// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles understood by the access gate.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// User model
type User struct {
	ID               primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string              `json:"name" bson:"name"`
	Email            string              `json:"email" bson:"email"`
	Password         string              `json:"password,omitempty" bson:"password"`
	Role             string              `json:"role" bson:"role"`
	Company          *primitive.ObjectID `json:"company,omitempty" bson:"company,omitempty"`
	AdminApproved    bool                `json:"adminApproved" bson:"adminApproved"`
	AdminRequestedAt *time.Time          `json:"adminRequestedAt,omitempty" bson:"adminRequestedAt,omitempty"`
	CreatedAt        time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// RegisterRequest is the body for POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the body for PUT /api/auth/profile
type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// AuthData is returned on successful register/login
type AuthData struct {
	ID            primitive.ObjectID  `json:"id"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Role          string              `json:"role"`
	Company       *primitive.ObjectID `json:"company,omitempty"`
	AdminApproved bool                `json:"adminApproved"`
	Token         string              `json:"token"`
}

// Response model
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

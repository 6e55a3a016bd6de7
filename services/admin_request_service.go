// Package services holds the admin-elevation workflow. Controllers stay
// thin; the state machine and its guards live here, over injected
// repositories.
package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobera/jobportal_backend/apperrors"
	"github.com/jobera/jobportal_backend/models"
	"github.com/jobera/jobportal_backend/repositories"
)

// DefaultRejectMessage is recorded when a reviewer rejects without a message.
const DefaultRejectMessage = "Request rejected by Super Admin"

// AdminRequestService drives the pending -> approved/rejected state machine
// and the correlated user and company updates. The request write and the
// user/company writes are separate document updates; there is no
// cross-document transaction, so a crash between them can leave an approved
// request with a not-yet-promoted user.
type AdminRequestService struct {
	users     repositories.UserRepository
	companies repositories.CompanyRepository
	requests  repositories.AdminRequestRepository
}

func NewAdminRequestService(users repositories.UserRepository, companies repositories.CompanyRepository, requests repositories.AdminRequestRepository) *AdminRequestService {
	return &AdminRequestService{
		users:     users,
		companies: companies,
		requests:  requests,
	}
}

// Submit creates a pending elevation request for the user targeting the
// given company and stamps the user's adminRequestedAt marker.
func (s *AdminRequestService) Submit(ctx context.Context, userID primitive.ObjectID, companyID, message string) (*models.AdminRequest, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Store("Failed to load user", err)
	}

	if user.Role == models.RoleAdmin || user.Role == models.RoleSuperadmin {
		return nil, apperrors.AlreadyPrivileged("User already has admin privileges")
	}

	companyObjectID, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return nil, apperrors.Validation("Invalid company ID format")
	}

	if _, err := s.companies.FindByID(ctx, companyObjectID); err != nil {
		if err == repositories.ErrNotFound {
			return nil, apperrors.NotFound("Company not found")
		}
		return nil, apperrors.Store("Failed to load company", err)
	}

	if _, err := s.requests.FindPendingByUser(ctx, userID); err != repositories.ErrNotFound {
		if err == nil {
			return nil, apperrors.DuplicatePending("You already have a pending admin request")
		}
		return nil, apperrors.Store("Failed to check pending requests", err)
	}

	now := time.Now()
	request := &models.AdminRequest{
		User:      userID,
		Company:   companyObjectID,
		Message:   message,
		Status:    models.RequestStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	request, err = s.requests.Insert(ctx, request)
	if err != nil {
		// The pending check above races with concurrent submissions; the
		// store's unique pending index is the backstop.
		if err == repositories.ErrDuplicate {
			return nil, apperrors.DuplicatePending("You already have a pending admin request")
		}
		return nil, apperrors.Store("Failed to create admin request", err)
	}

	if err := s.users.SetAdminRequestedAt(ctx, userID, &now); err != nil {
		return nil, apperrors.Store("Failed to stamp admin request time", err)
	}

	return request, nil
}

// List returns requests newest-first. status filters by exact match; empty
// status returns everything.
func (s *AdminRequestService) List(ctx context.Context, status string) ([]models.AdminRequest, error) {
	switch status {
	case "", models.RequestStatusPending, models.RequestStatusApproved, models.RequestStatusRejected:
	default:
		return nil, apperrors.Validation("Invalid status filter")
	}

	requests, err := s.requests.List(ctx, status)
	if err != nil {
		return nil, apperrors.Store("Failed to retrieve admin requests", err)
	}
	return requests, nil
}

// Approve moves a pending request to approved, promotes the requesting user
// to an approved admin of the target company, and points the company's
// admin reference back at the user.
func (s *AdminRequestService) Approve(ctx context.Context, requestID string, reviewerID primitive.ObjectID, message string) (*models.AdminRequest, error) {
	request, reviewedAt, err := s.review(ctx, requestID, reviewerID, models.RequestStatusApproved, message)
	if err != nil {
		return nil, err
	}

	if err := s.users.Promote(ctx, request.User, request.Company); err != nil {
		return nil, apperrors.Store("Request approved but user promotion failed", err)
	}

	if err := s.companies.SetAdmin(ctx, request.Company, request.User); err != nil {
		return nil, apperrors.Store("Request approved but company admin link failed", err)
	}

	request.Status = models.RequestStatusApproved
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &reviewedAt
	request.ReviewMessage = message
	request.UpdatedAt = reviewedAt
	return request, nil
}

// Reject moves a pending request to rejected and clears the user's
// adminRequestedAt marker so a new request may be submitted. The user's
// role is left untouched.
func (s *AdminRequestService) Reject(ctx context.Context, requestID string, reviewerID primitive.ObjectID, message string) (*models.AdminRequest, error) {
	if message == "" {
		message = DefaultRejectMessage
	}

	request, reviewedAt, err := s.review(ctx, requestID, reviewerID, models.RequestStatusRejected, message)
	if err != nil {
		return nil, err
	}

	if err := s.users.SetAdminRequestedAt(ctx, request.User, nil); err != nil {
		return nil, apperrors.Store("Request rejected but user update failed", err)
	}

	request.Status = models.RequestStatusRejected
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &reviewedAt
	request.ReviewMessage = message
	request.UpdatedAt = reviewedAt
	return request, nil
}

// review runs the shared lookup/guard sequence and writes the terminal
// state onto the request document.
func (s *AdminRequestService) review(ctx context.Context, requestID string, reviewerID primitive.ObjectID, status, message string) (*models.AdminRequest, time.Time, error) {
	requestObjectID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return nil, time.Time{}, apperrors.Validation("Invalid request ID format")
	}

	request, err := s.requests.FindByID(ctx, requestObjectID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, time.Time{}, apperrors.NotFound("Admin request not found")
		}
		return nil, time.Time{}, apperrors.Store("Failed to find admin request", err)
	}

	if request.Status != models.RequestStatusPending {
		return nil, time.Time{}, apperrors.AlreadyProcessed(fmt.Sprintf("Request already %s", request.Status))
	}

	reviewedAt := time.Now()
	if err := s.requests.MarkReviewed(ctx, requestObjectID, status, reviewerID, reviewedAt, message); err != nil {
		// A no-match here means another reviewer won the race after our
		// status check.
		if err == repositories.ErrNotFound {
			return nil, time.Time{}, apperrors.AlreadyProcessed("Request already processed")
		}
		return nil, time.Time{}, apperrors.Store("Failed to update admin request", err)
	}

	return request, reviewedAt, nil
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobera/jobportal_backend/apperrors"
	"github.com/jobera/jobportal_backend/models"
	"github.com/jobera/jobportal_backend/repositories"
)

// memUserRepo is an in-memory UserRepository
type memUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	r := &memUserRepo{users: make(map[primitive.ObjectID]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) Promote(_ context.Context, userID, companyID primitive.ObjectID) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	user.Role = models.RoleAdmin
	user.AdminApproved = true
	user.Company = &companyID
	return nil
}

func (r *memUserRepo) SetAdminRequestedAt(_ context.Context, userID primitive.ObjectID, at *time.Time) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	user.AdminRequestedAt = at
	return nil
}

// memCompanyRepo is an in-memory CompanyRepository
type memCompanyRepo struct {
	companies map[primitive.ObjectID]*models.Company
}

func newMemCompanyRepo(companies ...*models.Company) *memCompanyRepo {
	r := &memCompanyRepo{companies: make(map[primitive.ObjectID]*models.Company)}
	for _, c := range companies {
		r.companies[c.ID] = c
	}
	return r
}

func (r *memCompanyRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Company, error) {
	company, ok := r.companies[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *company
	return &copied, nil
}

func (r *memCompanyRepo) SetAdmin(_ context.Context, companyID, userID primitive.ObjectID) error {
	company, ok := r.companies[companyID]
	if !ok {
		return repositories.ErrNotFound
	}
	company.Admin = &userID
	return nil
}

// memRequestRepo is an in-memory AdminRequestRepository
type memRequestRepo struct {
	requests map[primitive.ObjectID]*models.AdminRequest
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{requests: make(map[primitive.ObjectID]*models.AdminRequest)}
}

func (r *memRequestRepo) Insert(_ context.Context, request *models.AdminRequest) (*models.AdminRequest, error) {
	request.ID = primitive.NewObjectID()
	stored := *request
	r.requests[request.ID] = &stored
	return request, nil
}

func (r *memRequestRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.AdminRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *request
	return &copied, nil
}

func (r *memRequestRepo) FindPendingByUser(_ context.Context, userID primitive.ObjectID) (*models.AdminRequest, error) {
	for _, request := range r.requests {
		if request.User == userID && request.Status == models.RequestStatusPending {
			copied := *request
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memRequestRepo) MarkReviewed(_ context.Context, id primitive.ObjectID, status string, reviewer primitive.ObjectID, reviewedAt time.Time, message string) error {
	request, ok := r.requests[id]
	if !ok || request.Status != models.RequestStatusPending {
		return repositories.ErrNotFound
	}
	request.Status = status
	request.ReviewedBy = &reviewer
	request.ReviewedAt = &reviewedAt
	request.ReviewMessage = message
	request.UpdatedAt = reviewedAt
	return nil
}

func (r *memRequestRepo) List(_ context.Context, status string) ([]models.AdminRequest, error) {
	var out []models.AdminRequest
	for _, request := range r.requests {
		if status == "" || request.Status == status {
			out = append(out, *request)
		}
	}
	return out, nil
}

type fixture struct {
	service   *AdminRequestService
	users     *memUserRepo
	companies *memCompanyRepo
	requests  *memRequestRepo
	user      *models.User
	company   *models.Company
	reviewer  *models.User
}

func newFixture() *fixture {
	user := &models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Role:  models.RoleUser,
	}
	reviewer := &models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Root",
		Email: "root@example.com",
		Role:  models.RoleSuperadmin,
	}
	company := &models.Company{
		ID:   primitive.NewObjectID(),
		Name: "Acme Corp",
	}

	users := newMemUserRepo(user, reviewer)
	companies := newMemCompanyRepo(company)
	requests := newMemRequestRepo()

	return &fixture{
		service:   NewAdminRequestService(users, companies, requests),
		users:     users,
		companies: companies,
		requests:  requests,
		user:      user,
		company:   company,
		reviewer:  reviewer,
	}
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	request, err := f.service.Submit(ctx, f.user.ID, f.company.ID.Hex(), "please")
	require.NoError(t, err)

	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, f.user.ID, request.User)
	assert.Equal(t, f.company.ID, request.Company)
	assert.False(t, request.ID.IsZero())

	// the user is stamped but not promoted
	assert.Equal(t, models.RoleUser, f.users.users[f.user.ID].Role)
	require.NotNil(t, f.users.users[f.user.ID].AdminRequestedAt)
}

// duplicateInsertRepo simulates losing the submit race: the pending check
// misses but the store's unique pending index rejects the insert.
type duplicateInsertRepo struct {
	*memRequestRepo
}

func (r *duplicateInsertRepo) Insert(_ context.Context, _ *models.AdminRequest) (*models.AdminRequest, error) {
	return nil, repositories.ErrDuplicate
}

func TestSubmitMapsDuplicateInsertToDuplicatePending(t *testing.T) {
	f := newFixture()
	f.service = NewAdminRequestService(f.users, f.companies, &duplicateInsertRepo{f.requests})

	_, err := f.service.Submit(context.Background(), f.user.ID, f.company.ID.Hex(), "")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindDuplicatePending, apperrors.KindOf(err))
}

func TestSubmitRejectsDuplicatePending(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.Submit(ctx, f.user.ID, f.company.ID.Hex(), "first")
	require.NoError(t, err)

	_, err = f.service.Submit(ctx, f.user.ID, f.company.ID.Hex(), "second")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindDuplicatePending, apperrors.KindOf(err))
}

func TestSubmitRejectsPrivilegedUsers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, role := range []string{models.RoleAdmin, models.RoleSuperadmin} {
		f.users.users[f.user.ID].Role = role
		_, err := f.service.Submit(ctx, f.user.ID, f.company.ID.Hex(), "")
		require.Error(t, err, role)
		assert.Equal(t, apperrors.KindAlreadyPrivileged, apperrors.KindOf(err), role)
	}
}

func TestSubmitValidatesTargets(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.Submit(ctx, primitive.NewObjectID(), f.company.ID.Hex(), "")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = f.service.Submit(ctx, f.user.ID, "not-a-hex-id", "")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = f.service.Submit(ctx, f.user.ID, primitive.NewObjectID().Hex(), "")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestApprovePromotesUserAndLinksCompany(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	request, err := f.service.Submit(ctx, f.user.ID, f.company.ID.Hex(), "")
	require.NoError(t, err)

	approved, err := f.service.Approve(ctx, request.ID.Hex(), f.reviewer.ID, "welcome aboard")
	require.NoError(t, err)

	assert.Equal(t, models.RequestStatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, f.reviewer.ID, *approved.ReviewedBy)
	assert.Equal(t, "welcome aboard", approved.ReviewMessage)
	assert.Equal(t, *approved.ReviewedAt, approved.UpdatedAt)

	user := f.users.users[f.user.ID]
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, user.AdminApproved)
	require.NotNil(t, user.Company)
	assert.Equal(t, f.company.ID, *user.Company)

	company := f.companies.companies[f.company.ID]
	require.NotNil(t, company.Admin)
	assert.Equal(t, f.user.ID, *company.Admin)
}

func TestRejectLeavesRoleAndClearsMarker(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	request, err := f.service.Submit(ctx, f.user.ID, f.company.ID.Hex(), "")
	require.NoError(t, err)
	require.NotNil(t, f.users.users[f.user.ID].AdminRequestedAt)

	rejected, err := f.service.Reject(ctx, request.ID.Hex(), f.reviewer.ID, "")
	require.NoError(t, err)

	assert.Equal(t, models.RequestStatusRejected, rejected.Status)
	assert.Equal(t, DefaultRejectMessage, rejected.ReviewMessage)
	require.NotNil(t, rejected.ReviewedAt)
	assert.Equal(t, *rejected.ReviewedAt, rejected.UpdatedAt)

	user := f.users.users[f.user.ID]
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.AdminApproved)
	assert.Nil(t, user.AdminRequestedAt)

	// a new request is allowed after rejection
	_, err = f.service.Submit(ctx, f.user.ID, f.company.ID.Hex(), "again")
	assert.NoError(t, err)
}

func TestReviewRejectsNonPendingRequests(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	request, err := f.service.Submit(ctx, f.user.ID, f.company.ID.Hex(), "")
	require.NoError(t, err)

	_, err = f.service.Approve(ctx, request.ID.Hex(), f.reviewer.ID, "")
	require.NoError(t, err)

	// a second decision of either kind is refused
	_, err = f.service.Approve(ctx, request.ID.Hex(), f.reviewer.ID, "")
	assert.Equal(t, apperrors.KindAlreadyProcessed, apperrors.KindOf(err))

	_, err = f.service.Reject(ctx, request.ID.Hex(), f.reviewer.ID, "too late")
	assert.Equal(t, apperrors.KindAlreadyProcessed, apperrors.KindOf(err))

	// the first decision stands
	assert.Equal(t, models.RoleAdmin, f.users.users[f.user.ID].Role)
}

func TestReviewValidatesRequestID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.Approve(ctx, "garbage", f.reviewer.ID, "")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = f.service.Approve(ctx, primitive.NewObjectID().Hex(), f.reviewer.ID, "")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestListFiltersByStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	second := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}
	f.users.users[second.ID] = second

	first, err := f.service.Submit(ctx, f.user.ID, f.company.ID.Hex(), "")
	require.NoError(t, err)
	_, err = f.service.Submit(ctx, second.ID, f.company.ID.Hex(), "")
	require.NoError(t, err)

	_, err = f.service.Approve(ctx, first.ID.Hex(), f.reviewer.ID, "")
	require.NoError(t, err)

	pending, err := f.service.List(ctx, models.RequestStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := f.service.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.service.List(ctx, "bogus")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

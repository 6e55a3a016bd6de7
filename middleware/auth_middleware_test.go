package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/jobera/jobportal_backend/models"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name          string
		role          string
		adminApproved bool
		allowedRoles  []string
		want          bool
	}{
		{
			name:         "superadmin passes any gate",
			role:         models.RoleSuperadmin,
			allowedRoles: []string{},
			want:         true,
		},
		{
			name:          "superadmin passes even when unapproved",
			role:          models.RoleSuperadmin,
			adminApproved: false,
			allowedRoles:  []string{models.RoleAdmin},
			want:          true,
		},
		{
			name:          "approved admin passes an admin gate",
			role:          models.RoleAdmin,
			adminApproved: true,
			allowedRoles:  []string{models.RoleAdmin},
			want:          true,
		},
		{
			name:          "unapproved admin is denied",
			role:          models.RoleAdmin,
			adminApproved: false,
			allowedRoles:  []string{models.RoleAdmin},
			want:          false,
		},
		{
			name:          "approved admin is denied at a superadmin gate",
			role:          models.RoleAdmin,
			adminApproved: true,
			allowedRoles:  []string{models.RoleSuperadmin},
			want:          false,
		},
		{
			name:         "regular user is denied",
			role:         models.RoleUser,
			allowedRoles: []string{models.RoleAdmin},
			want:         false,
		},
		{
			name:         "user is denied even when listed",
			role:         models.RoleUser,
			allowedRoles: []string{models.RoleUser},
			want:         false,
		},
		{
			name:         "unknown role is denied",
			role:         "moderator",
			allowedRoles: []string{models.RoleAdmin},
			want:         false,
		},
		{
			name:         "empty role is denied",
			role:         "",
			allowedRoles: []string{models.RoleAdmin},
			want:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Authorize(tt.role, tt.adminApproved, tt.allowedRoles...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorizeCompany(t *testing.T) {
	tests := []struct {
		name              string
		role              string
		userCompanyID     string
		resourceCompanyID string
		want              bool
	}{
		{
			name:              "superadmin may touch any company",
			role:              models.RoleSuperadmin,
			userCompanyID:     "",
			resourceCompanyID: "64f000000000000000000001",
			want:              true,
		},
		{
			name:              "admin may touch their own company",
			role:              models.RoleAdmin,
			userCompanyID:     "64f000000000000000000001",
			resourceCompanyID: "64f000000000000000000001",
			want:              true,
		},
		{
			name:              "admin may not touch another company",
			role:              models.RoleAdmin,
			userCompanyID:     "64f000000000000000000001",
			resourceCompanyID: "64f000000000000000000002",
			want:              false,
		},
		{
			name:              "admin with no company is denied",
			role:              models.RoleAdmin,
			userCompanyID:     "",
			resourceCompanyID: "",
			want:              false,
		},
		{
			name:              "regular user is denied",
			role:              models.RoleUser,
			userCompanyID:     "64f000000000000000000001",
			resourceCompanyID: "64f000000000000000000001",
			want:              false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AuthorizeCompany(tt.role, tt.userCompanyID, tt.resourceCompanyID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireRole(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	e := echo.New()

	userDoc := func(id primitive.ObjectID, role string, approved bool) bson.D {
		return bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Jane Doe"},
			{Key: "email", Value: "jane@example.com"},
			{Key: "password", Value: "bcrypt-hash"},
			{Key: "role", Value: role},
			{Key: "adminApproved", Value: approved},
		}
	}

	// invoke runs the gate with the given token identity and reports the
	// response plus the user the handler saw.
	invoke := func(mt *mtest.T, userID string, roles ...string) (*httptest.ResponseRecorder, *models.User) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		if userID != "" {
			c.Set("userId", userID)
		}

		var seen *models.User
		handler := RequireRole(mt.Client, roles...)(func(c echo.Context) error {
			seen = CurrentUser(c)
			return c.NoContent(http.StatusOK)
		})
		require.NoError(mt, handler(c))
		return rec, seen
	}

	mt.Run("rejects calls without a token identity", func(mt *mtest.T) {
		rec, seen := invoke(mt, "", models.RoleAdmin)
		assert.Equal(mt, http.StatusUnauthorized, rec.Code)
		assert.Nil(mt, seen)
	})

	mt.Run("rejects a malformed user id", func(mt *mtest.T) {
		rec, seen := invoke(mt, "not-an-object-id", models.RoleAdmin)
		assert.Equal(mt, http.StatusUnauthorized, rec.Code)
		assert.Nil(mt, seen)
	})

	mt.Run("rejects when the user no longer exists", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "jobportal.users", mtest.FirstBatch))

		rec, seen := invoke(mt, primitive.NewObjectID().Hex(), models.RoleAdmin)
		assert.Equal(mt, http.StatusUnauthorized, rec.Code)
		assert.Contains(mt, rec.Body.String(), "user not found")
		assert.Nil(mt, seen)
	})

	mt.Run("denies an unapproved admin with the pending message", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "jobportal.users", mtest.FirstBatch,
			userDoc(id, models.RoleAdmin, false)))

		rec, seen := invoke(mt, id.Hex(), models.RoleAdmin)
		assert.Equal(mt, http.StatusForbidden, rec.Code)
		assert.Contains(mt, rec.Body.String(), "Admin access pending approval")
		assert.Nil(mt, seen)
	})

	mt.Run("denies a regular user at an admin gate", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "jobportal.users", mtest.FirstBatch,
			userDoc(id, models.RoleUser, false)))

		rec, seen := invoke(mt, id.Hex(), models.RoleAdmin)
		assert.Equal(mt, http.StatusForbidden, rec.Code)
		assert.Contains(mt, rec.Body.String(), "Access denied")
		assert.Nil(mt, seen)
	})

	mt.Run("passes an approved admin and loads the caller", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "jobportal.users", mtest.FirstBatch,
			userDoc(id, models.RoleAdmin, true)))

		rec, seen := invoke(mt, id.Hex(), models.RoleAdmin)
		assert.Equal(mt, http.StatusOK, rec.Code)
		require.NotNil(mt, seen)
		assert.Equal(mt, id, seen.ID)
		assert.Equal(mt, models.RoleAdmin, seen.Role)
		assert.Empty(mt, seen.Password)
	})

	mt.Run("passes a superadmin at any gate", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "jobportal.users", mtest.FirstBatch,
			userDoc(id, models.RoleSuperadmin, false)))

		rec, seen := invoke(mt, id.Hex(), models.RoleAdmin)
		assert.Equal(mt, http.StatusOK, rec.Code)
		require.NotNil(mt, seen)
	})
}

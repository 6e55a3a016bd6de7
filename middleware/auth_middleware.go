// middleware/auth_middleware.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobera/jobportal_backend/config"
	"github.com/jobera/jobportal_backend/models"
)

// Authorize is the access gate for role-gated operations. Superadmins pass
// unconditionally; admins pass only when approved and listed; everyone else
// is denied. It is pure and evaluated on every gated call.
func Authorize(role string, adminApproved bool, allowedRoles ...string) bool {
	switch role {
	case models.RoleSuperadmin:
		return true
	case models.RoleAdmin:
		if !adminApproved {
			return false
		}
		for _, allowed := range allowedRoles {
			if allowed == models.RoleAdmin {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// AuthorizeCompany gates company-scoped operations: superadmins pass, an
// admin passes only on their own company.
func AuthorizeCompany(role string, userCompanyID, resourceCompanyID string) bool {
	switch role {
	case models.RoleSuperadmin:
		return true
	case models.RoleAdmin:
		return userCompanyID != "" && userCompanyID == resourceCompanyID
	default:
		return false
	}
}

// RequireRole loads the caller's fresh user document and applies the access
// gate. Role and adminApproved come from the database rather than the token
// so a promotion or revocation takes effect immediately.
func RequireRole(db *mongo.Client, allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := GetUserIDFromToken(c)
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Not authenticated",
				})
			}

			objID, err := primitive.ObjectIDFromHex(userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Invalid user ID in token",
				})
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			var user models.User
			err = config.GetCollection(db, "users").FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Not authorized, user not found",
				})
			}

			if !Authorize(user.Role, user.AdminApproved, allowedRoles...) {
				if user.Role == models.RoleAdmin && !user.AdminApproved {
					return c.JSON(http.StatusForbidden, models.Response{
						Status:  http.StatusForbidden,
						Message: "Admin access pending approval",
					})
				}
				return c.JSON(http.StatusForbidden, models.Response{
					Status:  http.StatusForbidden,
					Message: "Access denied. Required role: " + strings.Join(allowedRoles, " or "),
				})
			}

			user.Password = ""
			c.Set("currentUser", &user)
			return next(c)
		}
	}
}

// CurrentUser returns the user loaded by RequireRole, or nil.
func CurrentUser(c echo.Context) *models.User {
	user, ok := c.Get("currentUser").(*models.User)
	if !ok {
		return nil
	}
	return user
}

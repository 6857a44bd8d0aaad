package middleware

import (
	"net/http"
	"strings"

	"github.com/rahibvk/buyandsellmarketplace/internal/models"
	"github.com/rahibvk/buyandsellmarketplace/internal/security"
	"github.com/rahibvk/buyandsellmarketplace/internal/service"
	"github.com/rahibvk/buyandsellmarketplace/pkg/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// Authenticator resolves the acting user from the Authorization header.
// Access tokens are self-contained; verification is signature + expiry plus a
// user lookup, no session-store access.
type Authenticator struct {
	codec *security.TokenCodec
	users service.UserStore
}

func NewAuthenticator(codec *security.TokenCodec, users service.UserStore) *Authenticator {
	return &Authenticator{codec: codec, users: users}
}

// RequireAuth aborts with 401 when no valid bearer token is presented, 404
// when the token's subject no longer exists and 403 when the user is banned.
// On success the resolved user is stored in the request context.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		userID, err := a.codec.Verify(token)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := a.users.FindByID(userID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusNotFound, service.ErrUserNotFound.Error())
			c.Abort()
			return
		}

		if user.IsBanned {
			utils.ErrorResponse(c, http.StatusForbidden, service.ErrBanned.Error())
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the user when a valid bearer token is presented and
// continues anonymously on any failure. Banned users are treated as
// anonymous.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		userID, err := a.codec.Verify(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := a.users.FindByID(userID)
		if err != nil || user.IsBanned {
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAdmin checks the authenticated user's role. Runs after RequireAuth.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin || user.IsBanned {
			utils.ErrorResponse(c, http.StatusForbidden, service.ErrForbidden.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user resolved by RequireAuth or OptionalAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// A missing header or a different scheme both mean no credential.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

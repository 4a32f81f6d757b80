package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pmapi/project-management-api/internal/auth"
	"github.com/pmapi/project-management-api/internal/constants"
	apierrors "github.com/pmapi/project-management-api/internal/errors"
)

// RequireAuth validates the bearer access token from the Authorization
// header and stores the caller's user id in the request context.
func RequireAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		if !strings.HasPrefix(header, constants.BearerPrefix) {
			apierrors.Unauthorized(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		claims, err := issuer.Parse(strings.TrimPrefix(header, constants.BearerPrefix), auth.TokenTypeAccess)
		if err != nil {
			apierrors.Unauthorized(c, "Token is invalid or expired")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// Package middleware holds the gin middleware chain: request identity,
// logging, CORS, and token auth.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"siteworks_backend/internal/auth"
	"siteworks_backend/pkg/apperrors"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "user_role"
)

// AuthMiddleware validates the bearer token and stows the caller's identity
// on the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWith(c, apperrors.NewUnauthorizedError("Authorization header required"))
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			abortWith(c, apperrors.NewUnauthorizedError("Bearer token required"))
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			abortWith(c, apperrors.New(apperrors.CodeInvalidToken, "auth", "Invalid or expired token", 401))
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles gates a route group to callers whose token carries one of the
// given roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRoleKey)
		if !ok {
			abortWith(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}
		current, _ := role.(string)
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		abortWith(c, apperrors.ErrInsufficientPermissions)
	}
}

func abortWith(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
	c.Abort()
}

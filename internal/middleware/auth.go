package middleware

import (
	"github.com/gin-gonic/gin"

	"hrnexus_backend/internal/apperrors"
	"hrnexus_backend/internal/logger"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/session"
)

// Context keys set by SessionMiddleware.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// SessionMiddleware rejects requests when nobody is signed in and
// exposes the session's user id and role to handlers.
func SessionMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := sessions.Current()
		if user == nil {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextRole, user.Role)

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware restricts a route group to one role. It runs after
// SessionMiddleware.
func RoleMiddleware(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRole)
		role, ok := roleVal.(models.Role)
		if !exists || !ok || role != required {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

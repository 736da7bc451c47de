package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmcastillo/faculty-locator/internal/app/models"
	"github.com/jmcastillo/faculty-locator/internal/pkg/apperrors"
	"github.com/jmcastillo/faculty-locator/internal/pkg/auth"
)

// Context keys set by SessionRequired
const (
	ContextUserID   = "userID"
	ContextFullName = "fullName"
	ContextRole     = "role"
)

// AuthMiddleware gates routes on the session cookie and the user's role
type AuthMiddleware struct {
	sessions *auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// SessionRequired validates the session cookie and loads its claims into the
// request context. Requests without a valid session are sent to the login page.
func (m *AuthMiddleware) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.sessions.CookieName())
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := m.sessions.Validate(token)
		if err != nil {
			// Stale or tampered cookie; drop it and start over
			c.SetCookie(m.sessions.CookieName(), "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextFullName, claims.FullName)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// InstructorRequired rejects non-instructor sessions with a uniform access
// denied outcome. Must run after SessionRequired.
func (m *AuthMiddleware) InstructorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists || role != models.RoleInstructor {
			HandleError(c, apperrors.ErrPermissionDenied)
			return
		}

		c.Next()
	}
}

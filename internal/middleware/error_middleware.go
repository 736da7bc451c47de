package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmcastillo/faculty-locator/internal/pkg/apperrors"
	"github.com/jmcastillo/faculty-locator/internal/pkg/flash"
	"github.com/jmcastillo/faculty-locator/internal/pkg/logger"
)

// HandleError maps domain errors to their user-facing outcome: a flash
// message and a redirect to the page where the message is shown.
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		redirectWithError(c, "/login", "Invalid username or password.")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		redirectWithError(c, "/select", "Access denied.")
	case errors.Is(err, apperrors.ErrInvalidStatus):
		redirectWithError(c, "/instructor", "Invalid status.")
	case errors.Is(err, apperrors.ErrInvalidScheduleType):
		redirectWithError(c, "/instructor", "Invalid schedule type.")
	case errors.Is(err, apperrors.ErrMissingDates):
		redirectWithError(c, "/instructor", "Start and end dates are required.")
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		redirectWithError(c, "/student", "Department not found.")
	case errors.Is(err, apperrors.ErrProfileNotFound):
		redirectWithError(c, "/select", "Instructor profile not found.")
	default:
		// Storage or other unexpected failure; no retry, the request ends here
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		redirectWithError(c, "/select", "Something went wrong. Please try again.")
	}
}

func redirectWithError(c *gin.Context, target, message string) {
	flash.Error(c, message)
	c.Redirect(http.StatusSeeOther, target)
	c.Abort()
}

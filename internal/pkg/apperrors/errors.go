package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalid     = errors.New("invalid session")
	ErrSessionExpired     = errors.New("session expired")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidScheduleType = errors.New("invalid schedule type")
	ErrMissingDates        = errors.New("start and end dates are required")
)

// Department errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
)

// Instructor errors
var (
	ErrProfileNotFound = errors.New("instructor profile not found")
)

package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jmcastillo/faculty-locator/internal/app/models"
	"github.com/jmcastillo/faculty-locator/internal/app/models/dto"
	"github.com/jmcastillo/faculty-locator/internal/pkg/apperrors"
)

// recentActivityLimit bounds the dashboard's activity listing
const recentActivityLimit = 20

// InstructorStore is the instructor persistence surface, including the two
// transactional domain operations
type InstructorStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Instructor, error)
	ChangeStatus(ctx context.Context, instructorID int64, newStatus models.Status, action, details string) error
	AddSchedule(ctx context.Context, schedule *models.Schedule, newStatus models.Status, action, details string) error
}

// ScheduleStore lists an instructor's schedules
type ScheduleStore interface {
	GetByInstructor(ctx context.Context, instructorID int64) ([]*models.Schedule, error)
}

// ActivityStore lists an instructor's recent activity
type ActivityStore interface {
	GetRecent(ctx context.Context, instructorID int64, limit int) ([]*models.ActivityEntry, error)
}

// InstructorService handles the instructor self-service operations
type InstructorService interface {
	Dashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error)
	UpdateStatus(ctx context.Context, userID int64, status string) (models.Status, error)
	AddSchedule(ctx context.Context, userID int64, req dto.ScheduleRequest) (models.ScheduleType, error)
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	instructors InstructorStore
	schedules   ScheduleStore
	activity    ActivityStore
	logger      zerolog.Logger
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructors InstructorStore, schedules ScheduleStore, activity ActivityStore, logger zerolog.Logger) InstructorService {
	return &instructorServiceImpl{
		instructors: instructors,
		schedules:   schedules,
		activity:    activity,
		logger:      logger,
	}
}

// Dashboard assembles the authenticated instructor's own view: profile with
// department, schedules, and the last 20 activity entries
func (s *instructorServiceImpl) Dashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error) {
	instructor, err := s.instructors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	schedules, err := s.schedules.GetByInstructor(ctx, instructor.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}

	activity, err := s.activity.GetRecent(ctx, instructor.ID, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing activity: %w", err)
	}

	return &dto.DashboardResponse{
		Instructor: instructor,
		Schedules:  schedules,
		Activity:   activity,
	}, nil
}

// UpdateStatus validates the new status and applies it together with its
// activity log entry. Invalid values mutate nothing.
func (s *instructorServiceImpl) UpdateStatus(ctx context.Context, userID int64, status string) (models.Status, error) {
	newStatus := models.Status(status)
	if !newStatus.Valid() {
		return "", apperrors.ErrInvalidStatus
	}

	instructor, err := s.instructors.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	details := fmt.Sprintf("Changed from %s to %s", instructor.Status, newStatus)
	if err := s.instructors.ChangeStatus(ctx, instructor.ID, newStatus, models.ActionStatusChanged, details); err != nil {
		return "", err
	}

	s.logger.Info().
		Int64("instructorId", instructor.ID).
		Str("from", string(instructor.Status)).
		Str("to", string(newStatus)).
		Msg("Status updated")

	return newStatus, nil
}

// scheduleLabel returns the display form of a schedule type for log details
func scheduleLabel(t models.ScheduleType) string {
	if t == models.ScheduleTravel {
		return "Travel"
	}
	return "Leave"
}

// AddSchedule validates the schedule form and, in one atomic unit, inserts
// the schedule, overwrites the status derived from the type, and appends the
// activity entry. Rejections report which validation failed and mutate
// nothing. Dates are opaque strings; no ordering or overlap check.
func (s *instructorServiceImpl) AddSchedule(ctx context.Context, userID int64, req dto.ScheduleRequest) (models.ScheduleType, error) {
	scheduleType := models.ScheduleType(req.ScheduleType)
	if !scheduleType.Valid() {
		return "", apperrors.ErrInvalidScheduleType
	}
	if req.StartDate == "" || req.EndDate == "" {
		return "", apperrors.ErrMissingDates
	}

	instructor, err := s.instructors.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	schedule := &models.Schedule{
		InstructorID: instructor.ID,
		ScheduleType: scheduleType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
	}

	action := fmt.Sprintf("Scheduled %s", scheduleType)
	details := fmt.Sprintf("%s from %s to %s: %s",
		scheduleLabel(scheduleType), req.StartDate, req.EndDate, req.Reason)

	if err := s.instructors.AddSchedule(ctx, schedule, scheduleType.DerivedStatus(), action, details); err != nil {
		return "", err
	}

	s.logger.Info().
		Int64("instructorId", instructor.ID).
		Str("type", string(scheduleType)).
		Msg("Schedule added")

	return scheduleType, nil
}

package dto

import (
	"github.com/jmcastillo/faculty-locator/internal/app/models"
)

// StatusUpdateRequest is the status form body. Validation happens in the
// service so an unknown value is a distinct outcome, not a bind error.
type StatusUpdateRequest struct {
	Status string `form:"status"`
}

// ScheduleRequest is the schedule form body
type ScheduleRequest struct {
	ScheduleType string `form:"schedule_type"`
	StartDate    string `form:"start_date"`
	EndDate      string `form:"end_date"`
	Reason       string `form:"reason"`
}

// DashboardResponse is the instructor's self-service view: own profile,
// schedules newest-start-date-first, and the most recent activity entries
type DashboardResponse struct {
	Instructor *models.Instructor      `json:"instructor"`
	Schedules  []*models.Schedule      `json:"schedules"`
	Activity   []*models.ActivityEntry `json:"activity"`
}

package models

import "time"

// Schedule defines a planned leave or travel period, based on the 'schedules' table.
// Start and end dates are stored as the opaque strings the form submitted; no
// ordering between them is enforced.
type Schedule struct {
	ID           int64        `json:"id" db:"id"`
	InstructorID int64        `json:"instructorId" db:"instructor_id"`
	ScheduleType ScheduleType `json:"scheduleType" db:"schedule_type"`
	StartDate    string       `json:"startDate" db:"start_date"`
	EndDate      string       `json:"endDate" db:"end_date"`
	Reason       string       `json:"reason,omitempty" db:"reason"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
}

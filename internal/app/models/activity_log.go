package models

import "time"

// Activity log actions recorded by domain operations.
const (
	ActionStatusSet     = "Status set"
	ActionStatusChanged = "Status changed"
)

// ActivityEntry defines one row of the append-only 'activity_log' table
type ActivityEntry struct {
	ID           int64     `json:"id" db:"id"`
	InstructorID int64     `json:"instructorId" db:"instructor_id"`
	Action       string    `json:"action" db:"action"`
	Details      string    `json:"details" db:"details"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
}

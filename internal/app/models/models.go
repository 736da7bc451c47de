package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "student"
	RoleInstructor RoleType = "instructor"
)

// Status represents an instructor's current availability
type Status string

const (
	StatusIn       Status = "In"
	StatusOut      Status = "Out"
	StatusOnLeave  Status = "On Leave"
	StatusOnTravel Status = "On Travel"
)

// Valid reports whether s is one of the four allowed statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusIn, StatusOut, StatusOnLeave, StatusOnTravel:
		return true
	}
	return false
}

// ScheduleType represents the kind of planned absence
type ScheduleType string

const (
	ScheduleLeave  ScheduleType = "leave"
	ScheduleTravel ScheduleType = "travel"
)

// Valid reports whether t is a known schedule type.
func (t ScheduleType) Valid() bool {
	return t == ScheduleLeave || t == ScheduleTravel
}

// DerivedStatus returns the status a schedule of this type forces on the instructor.
func (t ScheduleType) DerivedStatus() Status {
	if t == ScheduleTravel {
		return StatusOnTravel
	}
	return StatusOnLeave
}

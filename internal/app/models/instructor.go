package models

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID           int64  `json:"id" db:"id"`                     // Unique identifier for the instructor record
	UserID       int64  `json:"userId" db:"user_id"`            // ID of the associated user account
	DepartmentID int64  `json:"departmentId" db:"department_id"` // ID of the instructor's department
	Status       Status `json:"status" db:"status"`             // Current availability status

	// Relations (populated when needed)
	User       *User       `json:"user,omitempty"`       // Associated user information
	Department *Department `json:"department,omitempty"` // Associated department
}

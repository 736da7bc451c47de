package models

// User defines the user model based on the 'users' table
type User struct {
	ID       int64    `json:"id" db:"id"`             // Unique identifier for the user
	Username string   `json:"username" db:"username"` // Login name, globally unique
	Password string   `json:"-" db:"password"`        // Hashed password (excluded from JSON)
	FullName string   `json:"fullName" db:"full_name"` // Display name
	Role     RoleType `json:"role" db:"role"`         // User's role (student or instructor)
}

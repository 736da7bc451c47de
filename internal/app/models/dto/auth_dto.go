package dto

// LoginRequest is the login form body
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// SessionInfo describes the logged-in user on the role-selection page
type SessionInfo struct {
	UserID   int64  `json:"userId"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

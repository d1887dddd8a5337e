package domain

import "time"

// User roles. Admin unlocks the company-accounting module and user
// management; everything else is available to any authenticated user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a back-office user.
type User struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

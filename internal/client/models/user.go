// Package models defines client-side data models used by the ArtSpace CLI.
package models

// Role is the marketplace role of a registered user. Guests have no User.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// User is the identity record returned by the remote service.
// Email is the unique key; Name is a display name and may collide.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether u carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// Role is the authorization level of a user
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// DefaultAvatar is assigned to users who have not picked an avatar
const DefaultAvatar = "avatar01.jpg"

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	return r == RoleStudent || r == RoleAdmin
}

// User represents a registered account
// PasswordHash holds the bcrypt hash; the plaintext secret is never stored
type User struct {
	ID           UserID
	Username     string // login name (unique, trimmed)
	PasswordHash string // bcrypt hash
	Role         Role
	Avatar       string
	CreatedAt    time.Time
}

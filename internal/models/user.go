// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import "time"

// Role represents a user's permission level in the system. It is a closed
// two-value enumeration: anything that is not RoleAdmin has member rights.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User represents an account bound to an external login identity.
// Users are created and refreshed through an idempotent upsert keyed by
// OpenID; they are never deleted.
type User struct {
	ID           int64      `json:"id"`
	OpenID       string     `json:"openId"`
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	LoginMethod  *string    `json:"loginMethod,omitempty"`
	Role         Role       `json:"role"`
	LastSignedIn *time.Time `json:"lastSignedIn,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

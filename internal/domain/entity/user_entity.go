package entity

import (
	"time"
)

// UserRole is the authorization role attached to a user.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// AccountStatus is the coarse lifecycle state of a user record. It is
// independent of credential correctness; whether a status may log in is
// decided by the valueobject package.
type AccountStatus string

const (
	StatusActive              AccountStatus = "ACTIVE"
	StatusInactive            AccountStatus = "INACTIVE"
	StatusSuspended           AccountStatus = "SUSPENDED"
	StatusPendingVerification AccountStatus = "PENDING_VERIFICATION"
)

// User is the aggregate root for the user domain
// Passwords are stored as bcrypt hashes in PasswordHash; the plaintext
// never reaches persistence.
type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string
	Role          UserRole
	AccountStatus AccountStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

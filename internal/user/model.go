package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserBlocked        = errors.New("user is blocked")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAdminBlockExempt   = errors.New("administrators cannot be blocked")
)

// Role is the closed set of campus roles.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleFaculty     Role = "FACULTY"
	RoleCoordinator Role = "COORDINATOR"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleCoordinator:
		return true
	}
	return false
}

// Status is the account status. Blocked users cannot log in or submit requests.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusBlocked Status = "BLOCKED"
)

// User represents a campus user.
type User struct {
	ID           string // UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Department   *string
	Status       Status
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Filter defines filter options for listing users.
type Filter struct {
	Email  string
	Name   string
	Role   string
	Status string

	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

package http

import (
	"time"

	"github.com/Rohith-M123/campus-booking-backend/internal/pkg/request"
	"github.com/Rohith-M123/campus-booking-backend/internal/user"
)

// UserTag is a brief representation of a user.
type UserTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserResponse is the shape of user data returned in API responses.
type UserResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Department  *string    `json:"department"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// NewUserResponse converts a domain user to its API representation.
func NewUserResponse(u *user.User) UserResponse {
	var lastLoginAt *time.Time
	if u.LastLoginAt != nil {
		ll := *u.LastLoginAt
		lastLoginAt = &ll
	}

	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		Department:  u.Department,
		Status:      string(u.Status),
		CreatedAt:   u.CreatedAt,
		LastLoginAt: lastLoginAt,
	}
}

// LoginRequest defines the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token plus the profile the dashboard
// keeps in its application state.
type LoginResponse struct {
	Token string       `json:"token"`
	Role  string       `json:"role"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest defines the payload for admin user creation.
type CreateUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,oneof=ADMIN FACULTY COORDINATOR"`
	Department string `json:"department"`
}

// ListUsersRequest defines query parameters for listing users.
type ListUsersRequest struct {
	request.ListParams
	Email  string `form:"email"`
	Name   string `form:"name"`
	Role   string `form:"role" binding:"omitempty,oneof=ADMIN FACULTY COORDINATOR"`
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE BLOCKED"`
}

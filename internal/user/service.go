package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rohith-M123/campus-booking-backend/internal/auth"
)

// CreateRequest holds the fields an administrator supplies for a new account.
type CreateRequest struct {
	Name       string
	Email      string
	Password   string
	Role       Role
	Department string
}

// Service defines business logic related to users.
type Service interface {
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, req CreateRequest) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)
	ToggleBlock(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	if u.Status == StatusBlocked {
		return nil, ErrUserBlocked
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Update last_login_at (best effort; do not fail login if update fails).
	now := time.Now().UTC()
	_ = s.repo.UpdateLastLogin(ctx, u.ID, now)

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	cleanEmail := normalizeEmail(req.Email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	if !req.Role.Valid() {
		return nil, ErrInvalidRole
	}

	if len(req.Password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	// Check if email is already used.
	_, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		return nil, ErrEmailAlreadyUsed
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var departmentPtr *string
	if d := strings.TrimSpace(req.Department); d != "" {
		departmentPtr = &d
	}

	u := &User{
		Name:         strings.TrimSpace(req.Name),
		Email:        cleanEmail,
		PasswordHash: hash,
		Role:         req.Role,
		Department:   departmentPtr,
		Status:       StatusActive,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	return s.repo.List(ctx, filter)
}

// ToggleBlock flips a user between ACTIVE and BLOCKED. Administrators are
// exempt: they are never blockable and users are never deleted.
func (s *service) ToggleBlock(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.IsAdmin() {
		return nil, ErrAdminBlockExempt
	}

	if u.Status == StatusBlocked {
		u.Status = StatusActive
	} else {
		u.Status = StatusBlocked
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

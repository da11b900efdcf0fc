// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"time"

	"caltrack/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and credential checks.
type AuthService struct {
	users domain.UserRepository
	cost  int
	now   func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository) *AuthService {
	return &AuthService{
		users: users,
		cost:  bcrypt.DefaultCost,
		now:   time.Now,
	}
}

// Register creates a user and returns its freshly minted ID.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" {
		return "", &domain.ValidationError{Field: "username", Reason: "must not be empty"}
	}

	// Checked up front so a taken name skips the bcrypt work; Create still
	// enforces uniqueness for concurrent registrations.
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", &domain.ValidationError{Field: "password", Reason: "must be at most 72 bytes"}
	}
	if err != nil {
		return "", err
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}
	return u.ID, nil
}

// Authenticate returns the ID of the user whose credentials match. Unknown
// usernames and wrong passwords produce the same error.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return user.ID, nil
}

// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// User represents a registered user in the system.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines the port for user persistence operations.
//
// GetByUsername and GetByID return (nil, nil) when no user matches.
// Create returns ErrDuplicateUsername if the username is taken.
type UserRepository interface {
	Create(ctx context.Context, u User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

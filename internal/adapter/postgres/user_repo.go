package postgres

import (
	"context"
	"database/sql"
	"errors"

	"caltrack/internal/domain"
)

// Create inserts a new user. A username clash surfaces as ErrDuplicateUsername.
func (d *DB) Create(ctx context.Context, u domain.User) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)",
		u.ID, u.Username, u.PasswordHash, u.CreatedAt.UTC(),
	)
	if err != nil {
		return mapError(err, domain.ErrDuplicateUsername, nil)
	}
	return nil
}

// GetByUsername retrieves a user by username.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return d.getUser(ctx, "SELECT id, username, password_hash, created_at FROM users WHERE username = $1", username)
}

// GetByID retrieves a user by ID.
func (d *DB) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return d.getUser(ctx, "SELECT id, username, password_hash, created_at FROM users WHERE id = $1", id)
}

func (d *DB) getUser(ctx context.Context, query string, arg string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

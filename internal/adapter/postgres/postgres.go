// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"caltrack/internal/domain"

	"github.com/lib/pq"
)

// SQLSTATE codes mapped onto domain errors.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.FoodCatalog = (*DB)(nil)
var _ domain.MealRepository = (*DB)(nil)
var _ domain.WorkoutRepository = (*DB)(nil)

// New wraps an open connection without running migrations.
func New(db *sql.DB) *DB {
	return &DB{sql: db}
}

// Open connects to PostgreSQL, pings, runs migrations and replaces the food
// catalog with foods.
func Open(connStr string, foods []domain.FoodItem) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := New(s)
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	if err := d.SeedFoods(ctx, foods); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (id TEXT PRIMARY KEY, username TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS foods (id TEXT PRIMARY KEY, position INTEGER NOT NULL, name TEXT NOT NULL, calories DOUBLE PRECISION NOT NULL, protein DOUBLE PRECISION NOT NULL DEFAULT 0, fat DOUBLE PRECISION NOT NULL DEFAULT 0, carbs DOUBLE PRECISION NOT NULL DEFAULT 0);",
		"CREATE TABLE IF NOT EXISTS meals (id BIGSERIAL PRIMARY KEY, user_id TEXT NOT NULL REFERENCES users(id), food_id TEXT, name TEXT NOT NULL, calories DOUBLE PRECISION NOT NULL CHECK (calories > 0), protein DOUBLE PRECISION NOT NULL DEFAULT 0, fat DOUBLE PRECISION NOT NULL DEFAULT 0, carbs DOUBLE PRECISION NOT NULL DEFAULT 0, logged_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_meals_user_id ON meals(user_id);",
		"CREATE TABLE IF NOT EXISTS workouts (id BIGSERIAL PRIMARY KEY, user_id TEXT NOT NULL REFERENCES users(id), activity TEXT NOT NULL, duration_minutes DOUBLE PRECISION NOT NULL CHECK (duration_minutes > 0), calories_burned DOUBLE PRECISION NOT NULL CHECK (calories_burned >= 0), logged_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_workouts_user_id ON workouts(user_id);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// mapError translates constraint violations into domain errors.
func mapError(err error, unique, foreignKey error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch string(pqErr.Code) {
	case codeUniqueViolation:
		if unique != nil {
			return unique
		}
	case codeForeignKeyViolation:
		if foreignKey != nil {
			return foreignKey
		}
	}
	return err
}

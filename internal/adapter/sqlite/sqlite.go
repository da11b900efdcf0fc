// Package sqlite implements the domain repositories on an embedded SQLite
// database, for single-node deployments that want durability without a
// PostgreSQL server.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"caltrack/internal/domain"

	"github.com/mattn/go-sqlite3"
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

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS foods (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	calories REAL NOT NULL,
	protein REAL NOT NULL DEFAULT 0,
	fat REAL NOT NULL DEFAULT 0,
	carbs REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS meals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL REFERENCES users(id),
	food_id TEXT,
	name TEXT NOT NULL,
	calories REAL NOT NULL CHECK (calories > 0),
	protein REAL NOT NULL DEFAULT 0,
	fat REAL NOT NULL DEFAULT 0,
	carbs REAL NOT NULL DEFAULT 0,
	logged_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_meals_user_id ON meals(user_id);

CREATE TABLE IF NOT EXISTS workouts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL REFERENCES users(id),
	activity TEXT NOT NULL,
	duration_minutes REAL NOT NULL CHECK (duration_minutes > 0),
	calories_burned REAL NOT NULL CHECK (calories_burned >= 0),
	logged_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_workouts_user_id ON workouts(user_id);
`

// Open opens (creating if needed) the database at path, enables foreign
// keys, creates the schema and replaces the food catalog with foods.
func Open(path string, foods []domain.FoodItem) (*DB, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	s, err := sql.Open("sqlite3", path+sep+"_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection serializes writers and keeps ":memory:" databases alive.
	s.SetMaxOpenConns(1)

	ctx := context.Background()
	if _, err := s.ExecContext(ctx, schema); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	d := &DB{sql: s}
	if err := d.SeedFoods(ctx, foods); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.sql.Close()
}

func mapError(err error, unique, foreignKey error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	switch {
	case unique != nil && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique:
		return unique
	case foreignKey != nil && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey:
		return foreignKey
	}
	return err
}

// --- UserRepository ---

// Create inserts a new user. A username clash surfaces as ErrDuplicateUsername.
func (d *DB) Create(ctx context.Context, u domain.User) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)",
		u.ID, u.Username, u.PasswordHash, u.CreatedAt.UTC(),
	)
	if err != nil {
		return mapError(err, domain.ErrDuplicateUsername, nil)
	}
	return nil
}

// GetByUsername retrieves a user by username.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return d.getUser(ctx, "SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username)
}

// GetByID retrieves a user by ID.
func (d *DB) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return d.getUser(ctx, "SELECT id, username, password_hash, created_at FROM users WHERE id = ?", id)
}

func (d *DB) getUser(ctx context.Context, query, arg string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

// --- FoodCatalog ---

// SeedFoods replaces the catalog with foods, keeping their order.
func (d *DB) SeedFoods(ctx context.Context, foods []domain.FoodItem) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed foods: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM foods"); err != nil {
		return fmt.Errorf("seed foods: %w", err)
	}
	for i, f := range foods {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO foods (id, position, name, calories, protein, fat, carbs) VALUES (?, ?, ?, ?, ?, ?, ?)",
			f.ID, i, f.Name, f.Calories, f.Protein, f.Fat, f.Carbs,
		)
		if err != nil {
			return fmt.Errorf("seed foods: %s: %w", f.ID, err)
		}
	}
	return tx.Commit()
}

// ListFoods returns the catalog in seed order.
func (d *DB) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT id, name, calories, protein, fat, carbs FROM foods ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.FoodItem{}
	for rows.Next() {
		var f domain.FoodItem
		if err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Fat, &f.Carbs); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// GetFood looks up a catalog item by ID.
func (d *DB) GetFood(ctx context.Context, id string) (*domain.FoodItem, error) {
	var f domain.FoodItem
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, name, calories, protein, fat, carbs FROM foods WHERE id = ?", id,
	).Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Fat, &f.Carbs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// --- MealRepository ---

// AddMeal inserts a meal entry. A dangling user_id surfaces as ErrUserNotFound.
func (d *DB) AddMeal(ctx context.Context, m domain.MealEntry) (int64, error) {
	res, err := d.sql.ExecContext(ctx,
		"INSERT INTO meals (user_id, food_id, name, calories, protein, fat, carbs, logged_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		m.UserID, sql.NullString{String: m.FoodID, Valid: m.FoodID != ""}, m.Name,
		m.Calories, m.Protein, m.Fat, m.Carbs, m.LoggedAt.UTC(),
	)
	if err != nil {
		return 0, mapError(err, nil, domain.ErrUserNotFound)
	}
	return res.LastInsertId()
}

// ListMealsByUser returns a user's meals in insertion order.
func (d *DB) ListMealsByUser(ctx context.Context, userID string) ([]domain.MealEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, food_id, name, calories, protein, fat, carbs, logged_at FROM meals WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.MealEntry{}
	for rows.Next() {
		var (
			m      domain.MealEntry
			foodID sql.NullString
		)
		if err := rows.Scan(&m.ID, &foodID, &m.Name, &m.Calories, &m.Protein, &m.Fat, &m.Carbs, &m.LoggedAt); err != nil {
			return nil, err
		}
		m.UserID = userID
		m.FoodID = foodID.String
		m.LoggedAt = m.LoggedAt.UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}

// --- WorkoutRepository ---

// AddWorkout inserts a workout entry. A dangling user_id surfaces as ErrUserNotFound.
func (d *DB) AddWorkout(ctx context.Context, w domain.WorkoutEntry) (int64, error) {
	res, err := d.sql.ExecContext(ctx,
		"INSERT INTO workouts (user_id, activity, duration_minutes, calories_burned, logged_at) VALUES (?, ?, ?, ?, ?)",
		w.UserID, w.Activity, w.DurationMinutes, w.CaloriesBurned, w.LoggedAt.UTC(),
	)
	if err != nil {
		return 0, mapError(err, nil, domain.ErrUserNotFound)
	}
	return res.LastInsertId()
}

// ListWorkoutsByUser returns a user's workouts in insertion order.
func (d *DB) ListWorkoutsByUser(ctx context.Context, userID string) ([]domain.WorkoutEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, activity, duration_minutes, calories_burned, logged_at FROM workouts WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.WorkoutEntry{}
	for rows.Next() {
		var w domain.WorkoutEntry
		if err := rows.Scan(&w.ID, &w.Activity, &w.DurationMinutes, &w.CaloriesBurned, &w.LoggedAt); err != nil {
			return nil, err
		}
		w.UserID = userID
		w.LoggedAt = w.LoggedAt.UTC()
		out = append(out, w)
	}
	return out, rows.Err()
}

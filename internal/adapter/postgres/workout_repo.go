package postgres

import (
	"context"

	"caltrack/internal/domain"
)

// AddWorkout inserts a workout entry. A dangling user_id surfaces as ErrUserNotFound.
func (d *DB) AddWorkout(ctx context.Context, w domain.WorkoutEntry) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO workouts (user_id, activity, duration_minutes, calories_burned, logged_at) VALUES ($1, $2, $3, $4, $5) RETURNING id;",
		w.UserID, w.Activity, w.DurationMinutes, w.CaloriesBurned, w.LoggedAt.UTC(),
	).Scan(&id)
	if err != nil {
		return 0, mapError(err, nil, domain.ErrUserNotFound)
	}
	return id, nil
}

// ListWorkoutsByUser returns a user's workouts in insertion order.
func (d *DB) ListWorkoutsByUser(ctx context.Context, userID string) ([]domain.WorkoutEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, activity, duration_minutes, calories_burned, logged_at FROM workouts WHERE user_id = $1 ORDER BY id;", userID)
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

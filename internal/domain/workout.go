package domain

import (
	"context"
	"math"
	"strings"
	"time"
)

// WorkoutEntry represents a single logged workout.
type WorkoutEntry struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"user_id"`
	Activity        string    `json:"activity"`
	DurationMinutes float64   `json:"duration_minutes"`
	CaloriesBurned  float64   `json:"calories_burned"`
	LoggedAt        time.Time `json:"logged_at"`
}

// Validate checks the numeric ranges and the activity label of a workout entry.
func (w WorkoutEntry) Validate() error {
	if !(w.DurationMinutes > 0) || math.IsInf(w.DurationMinutes, 0) {
		return invalid("duration_minutes", "must be > 0")
	}
	if !(w.CaloriesBurned >= 0) || math.IsInf(w.CaloriesBurned, 0) {
		return invalid("calories_burned", "must be >= 0")
	}
	if strings.TrimSpace(w.Activity) == "" {
		return invalid("activity", "must not be empty")
	}
	return nil
}

// WorkoutRepository is the port for workout persistence.
type WorkoutRepository interface {
	AddWorkout(ctx context.Context, w WorkoutEntry) (int64, error)
	ListWorkoutsByUser(ctx context.Context, userID string) ([]WorkoutEntry, error)
}

package app

import (
	"context"
	"time"

	"caltrack/internal/domain"
)

// WorkoutService encapsulates workout-logging use cases.
type WorkoutService struct {
	workouts domain.WorkoutRepository
	users    domain.UserRepository
	now      func() time.Time
}

// NewWorkoutService creates a WorkoutService backed by the given repositories.
func NewWorkoutService(workouts domain.WorkoutRepository, users domain.UserRepository) *WorkoutService {
	return &WorkoutService{workouts: workouts, users: users, now: time.Now}
}

// LogWorkout validates and stores a workout entry.
func (s *WorkoutService) LogWorkout(ctx context.Context, w domain.WorkoutEntry) (domain.WorkoutEntry, error) {
	if err := requireUser(ctx, s.users, w.UserID); err != nil {
		return domain.WorkoutEntry{}, err
	}
	if err := w.Validate(); err != nil {
		return domain.WorkoutEntry{}, err
	}

	if w.LoggedAt.IsZero() {
		w.LoggedAt = s.now()
	}
	w.LoggedAt = domain.NormalizeTime(w.LoggedAt)

	id, err := s.workouts.AddWorkout(ctx, w)
	if err != nil {
		return domain.WorkoutEntry{}, err
	}
	w.ID = id
	return w, nil
}

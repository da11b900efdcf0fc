package adapthttp

import (
	"net/http"
	"time"

	"caltrack/internal/domain"
)

type logWorkoutRequest struct {
	UserID          string     `json:"user_id"`
	Activity        string     `json:"activity"`
	DurationMinutes float64    `json:"duration_minutes"`
	CaloriesBurned  *float64   `json:"calories_burned"`
	LoggedAt        *time.Time `json:"logged_at"`
}

func (s *Server) handleLogWorkout(w http.ResponseWriter, r *http.Request) {
	var req logWorkoutRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.CaloriesBurned == nil {
		s.fail(w, r, &domain.ValidationError{Field: "calories_burned", Reason: "is required"})
		return
	}

	wo := domain.WorkoutEntry{
		UserID:          req.UserID,
		Activity:        req.Activity,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  *req.CaloriesBurned,
	}
	if req.LoggedAt != nil {
		wo.LoggedAt = *req.LoggedAt
	}

	saved, err := s.workouts.LogWorkout(r.Context(), wo)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Workout logged", "workout": saved})
}

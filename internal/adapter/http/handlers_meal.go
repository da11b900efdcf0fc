package adapthttp

import (
	"net/http"
	"time"

	"caltrack/internal/domain"
)

type logMealRequest struct {
	UserID   string     `json:"user_id"`
	FoodID   string     `json:"food_id"`
	Name     string     `json:"name"`
	Calories float64    `json:"calories"`
	Protein  float64    `json:"protein"`
	Fat      float64    `json:"fat"`
	Carbs    float64    `json:"carbs"`
	LoggedAt *time.Time `json:"logged_at"`
}

func (s *Server) handleLogMeal(w http.ResponseWriter, r *http.Request) {
	var req logMealRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	m := domain.MealEntry{
		UserID:   req.UserID,
		FoodID:   req.FoodID,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Fat:      req.Fat,
		Carbs:    req.Carbs,
	}
	if req.LoggedAt != nil {
		m.LoggedAt = *req.LoggedAt
	}

	saved, err := s.meals.LogMeal(r.Context(), m)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Meal logged", "meal": saved})
}

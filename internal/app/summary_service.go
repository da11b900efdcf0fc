package app

import (
	"context"

	"caltrack/internal/domain"
)

// SummaryService computes per-user calorie summaries.
type SummaryService struct {
	meals    domain.MealRepository
	workouts domain.WorkoutRepository
}

// NewSummaryService creates a SummaryService backed by the given repositories.
func NewSummaryService(meals domain.MealRepository, workouts domain.WorkoutRepository) *SummaryService {
	return &SummaryService{meals: meals, workouts: workouts}
}

// GetSummary returns every meal and workout logged for userID, in insertion
// order, with their net calories. The user is not looked up: an unknown ID
// yields an empty summary.
func (s *SummaryService) GetSummary(ctx context.Context, userID string) (domain.Summary, error) {
	meals, err := s.meals.ListMealsByUser(ctx, userID)
	if err != nil {
		return domain.Summary{}, err
	}
	workouts, err := s.workouts.ListWorkoutsByUser(ctx, userID)
	if err != nil {
		return domain.Summary{}, err
	}

	if meals == nil {
		meals = []domain.MealEntry{}
	}
	if workouts == nil {
		workouts = []domain.WorkoutEntry{}
	}
	return domain.Summary{
		Meals:       meals,
		Workouts:    workouts,
		NetCalories: domain.NetCalories(meals, workouts),
	}, nil
}

package domain

import (
	"context"
	"math"
	"time"
)

// FoodItem is a read-only catalog entry. Nutrition values are per serving.
type FoodItem struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Fat      float64 `json:"fat" yaml:"fat"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
}

// MealEntry represents a single logged meal.
type MealEntry struct {
	ID       int64     `json:"id"`
	UserID   string    `json:"user_id"`
	FoodID   string    `json:"food_id,omitempty"`
	Name     string    `json:"name"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Fat      float64   `json:"fat"`
	Carbs    float64   `json:"carbs"`
	LoggedAt time.Time `json:"logged_at"`
}

// ApplyFood overwrites the entry's name and nutrition with the catalog values.
func (m *MealEntry) ApplyFood(f FoodItem) {
	m.Name = f.Name
	m.Calories = f.Calories
	m.Protein = f.Protein
	m.Fat = f.Fat
	m.Carbs = f.Carbs
}

// Validate checks the numeric ranges of a meal entry.
func (m MealEntry) Validate() error {
	if !(m.Calories > 0) || math.IsInf(m.Calories, 0) {
		return invalid("calories", "must be > 0")
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"protein", m.Protein}, {"fat", m.Fat}, {"carbs", m.Carbs}} {
		if !(f.v >= 0) || math.IsInf(f.v, 0) {
			return invalid(f.name, "must be >= 0")
		}
	}
	return nil
}

// FoodCatalog is the port for the static food catalog.
//
// GetFood returns (nil, nil) when no item has the given ID.
type FoodCatalog interface {
	ListFoods(ctx context.Context) ([]FoodItem, error)
	GetFood(ctx context.Context, id string) (*FoodItem, error)
}

// MealRepository is the port for meal persistence.
type MealRepository interface {
	AddMeal(ctx context.Context, m MealEntry) (int64, error)
	ListMealsByUser(ctx context.Context, userID string) ([]MealEntry, error)
}

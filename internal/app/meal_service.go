package app

import (
	"context"
	"time"

	"caltrack/internal/domain"

	"go.uber.org/zap"
)

// MealService encapsulates meal-logging use cases.
type MealService struct {
	meals   domain.MealRepository
	users   domain.UserRepository
	catalog domain.FoodCatalog
	log     *zap.Logger
	now     func() time.Time
}

// NewMealService creates a MealService backed by the given repositories.
func NewMealService(meals domain.MealRepository, users domain.UserRepository, catalog domain.FoodCatalog, log *zap.Logger) *MealService {
	if log == nil {
		log = zap.NewNop()
	}
	return &MealService{meals: meals, users: users, catalog: catalog, log: log, now: time.Now}
}

// LogMeal auto-fills the entry from the catalog, validates it and stores it.
// The returned entry is exactly what was recorded.
//
// The order of checks is fixed: catalog auto-fill, then user existence, then
// numeric ranges. An unknown food ID is not an error; the caller's values are
// kept.
func (s *MealService) LogMeal(ctx context.Context, m domain.MealEntry) (domain.MealEntry, error) {
	if m.FoodID != "" {
		food, err := s.catalog.GetFood(ctx, m.FoodID)
		if err != nil {
			return domain.MealEntry{}, err
		}
		if food != nil {
			m.ApplyFood(*food)
		} else {
			s.log.Debug("food id not in catalog, keeping supplied values", zap.String("food_id", m.FoodID))
		}
	}

	if err := requireUser(ctx, s.users, m.UserID); err != nil {
		return domain.MealEntry{}, err
	}

	if err := m.Validate(); err != nil {
		return domain.MealEntry{}, err
	}

	if m.LoggedAt.IsZero() {
		m.LoggedAt = s.now()
	}
	m.LoggedAt = domain.NormalizeTime(m.LoggedAt)

	id, err := s.meals.AddMeal(ctx, m)
	if err != nil {
		return domain.MealEntry{}, err
	}
	m.ID = id
	return m, nil
}

func requireUser(ctx context.Context, users domain.UserRepository, id string) error {
	if id == "" {
		return domain.ErrUserNotFound
	}
	u, err := users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	return nil
}

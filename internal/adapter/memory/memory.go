// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sync"

	"caltrack/internal/domain"
)

// DB implements an in-memory database storage. A single mutex serializes
// every read and write, so readers never see a partially appended entry.
type DB struct {
	mu          sync.Mutex
	users       []*domain.User
	byUsername  map[string]*domain.User
	byID        map[string]*domain.User
	foods       []domain.FoodItem
	foodIndex   map[string]int
	meals       []domain.MealEntry
	workouts    []domain.WorkoutEntry
	mealIDCount int64
	workIDCount int64
}

// New creates a new in-memory database seeded with the given food catalog.
func New(foods []domain.FoodItem) *DB {
	db := &DB{
		byUsername: make(map[string]*domain.User),
		byID:       make(map[string]*domain.User),
		foodIndex:  make(map[string]int, len(foods)),
	}
	for _, f := range foods {
		if _, ok := db.foodIndex[f.ID]; ok {
			continue
		}
		db.foodIndex[f.ID] = len(db.foods)
		db.foods = append(db.foods, f)
	}
	return db
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.FoodCatalog = (*DB)(nil)
var _ domain.MealRepository = (*DB)(nil)
var _ domain.WorkoutRepository = (*DB)(nil)

// Close is a no-op; it lets DB stand in for the SQL stores.
func (db *DB) Close() error { return nil }

// --- UserRepository ---

// Create stores a new user, failing if the username is already taken.
func (db *DB) Create(ctx context.Context, u domain.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.byUsername[u.Username]; ok {
		return domain.ErrDuplicateUsername
	}
	stored := u
	db.users = append(db.users, &stored)
	db.byUsername[u.Username] = &stored
	db.byID[u.ID] = &stored
	return nil
}

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if u, ok := db.byUsername[username]; ok {
		ret := *u
		return &ret, nil
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if u, ok := db.byID[id]; ok {
		ret := *u
		return &ret, nil
	}
	return nil, nil
}

// --- FoodCatalog ---

// ListFoods returns a copy of the catalog.
func (db *DB) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.FoodItem, len(db.foods))
	copy(result, db.foods)
	return result, nil
}

// GetFood looks up a catalog item by ID.
func (db *DB) GetFood(ctx context.Context, id string) (*domain.FoodItem, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	i, ok := db.foodIndex[id]
	if !ok {
		return nil, nil
	}
	f := db.foods[i]
	return &f, nil
}

// --- MealRepository ---

// AddMeal appends a meal entry.
func (db *DB) AddMeal(ctx context.Context, m domain.MealEntry) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.byID[m.UserID]; !ok {
		return 0, domain.ErrUserNotFound
	}
	db.mealIDCount++
	m.ID = db.mealIDCount
	m.LoggedAt = m.LoggedAt.UTC()
	db.meals = append(db.meals, m)
	return m.ID, nil
}

// ListMealsByUser returns the user's meals in insertion order.
func (db *DB) ListMealsByUser(ctx context.Context, userID string) ([]domain.MealEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := []domain.MealEntry{}
	for _, m := range db.meals {
		if m.UserID == userID {
			result = append(result, m)
		}
	}
	return result, nil
}

// --- WorkoutRepository ---

// AddWorkout appends a workout entry.
func (db *DB) AddWorkout(ctx context.Context, w domain.WorkoutEntry) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.byID[w.UserID]; !ok {
		return 0, domain.ErrUserNotFound
	}
	db.workIDCount++
	w.ID = db.workIDCount
	w.LoggedAt = w.LoggedAt.UTC()
	db.workouts = append(db.workouts, w)
	return w.ID, nil
}

// ListWorkoutsByUser returns the user's workouts in insertion order.
func (db *DB) ListWorkoutsByUser(ctx context.Context, userID string) ([]domain.WorkoutEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := []domain.WorkoutEntry{}
	for _, w := range db.workouts {
		if w.UserID == userID {
			result = append(result, w)
		}
	}
	return result, nil
}

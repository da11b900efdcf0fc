package postgres

import (
	"context"
	"database/sql"

	"caltrack/internal/domain"
)

// AddMeal inserts a meal entry. A dangling user_id surfaces as ErrUserNotFound.
func (d *DB) AddMeal(ctx context.Context, m domain.MealEntry) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO meals (user_id, food_id, name, calories, protein, fat, carbs, logged_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;",
		m.UserID, sql.NullString{String: m.FoodID, Valid: m.FoodID != ""}, m.Name,
		m.Calories, m.Protein, m.Fat, m.Carbs, m.LoggedAt.UTC(),
	).Scan(&id)
	if err != nil {
		return 0, mapError(err, nil, domain.ErrUserNotFound)
	}
	return id, nil
}

// ListMealsByUser returns a user's meals in insertion order.
func (d *DB) ListMealsByUser(ctx context.Context, userID string) ([]domain.MealEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, food_id, name, calories, protein, fat, carbs, logged_at FROM meals WHERE user_id = $1 ORDER BY id;", userID)
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

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"caltrack/internal/domain"
)

// SeedFoods replaces the catalog with foods in a single transaction,
// recording each item's position so listing keeps the seed order.
func (d *DB) SeedFoods(ctx context.Context, foods []domain.FoodItem) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed foods: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM foods"); err != nil {
		return fmt.Errorf("seed foods: %w", err)
	}
	for i, f := range foods {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO foods (id, position, name, calories, protein, fat, carbs) VALUES ($1, $2, $3, $4, $5, $6, $7)",
			f.ID, i, f.Name, f.Calories, f.Protein, f.Fat, f.Carbs,
		)
		if err != nil {
			return fmt.Errorf("seed foods: %s: %w", f.ID, err)
		}
	}
	return tx.Commit()
}

// ListFoods returns the catalog in seed order.
func (d *DB) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, name, calories, protein, fat, carbs FROM foods ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.FoodItem{}
	for rows.Next() {
		var f domain.FoodItem
		if err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Fat, &f.Carbs); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// GetFood looks up a catalog item by ID.
func (d *DB) GetFood(ctx context.Context, id string) (*domain.FoodItem, error) {
	var f domain.FoodItem
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, name, calories, protein, fat, carbs FROM foods WHERE id = $1", id,
	).Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Fat, &f.Carbs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

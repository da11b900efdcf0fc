package app

import (
	"context"

	"caltrack/internal/domain"
)

// FoodService exposes the food catalog.
type FoodService struct {
	catalog domain.FoodCatalog
}

// NewFoodService creates a FoodService backed by the given catalog.
func NewFoodService(catalog domain.FoodCatalog) *FoodService {
	return &FoodService{catalog: catalog}
}

// ListFoods returns the full catalog in insertion order.
func (s *FoodService) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	foods, err := s.catalog.ListFoods(ctx)
	if err != nil {
		return nil, err
	}
	if foods == nil {
		foods = []domain.FoodItem{}
	}
	return foods, nil
}

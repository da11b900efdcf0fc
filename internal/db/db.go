// Package db picks the storage backend for a DATABASE_URL.
package db

import (
	"fmt"
	"io"
	"strings"

	"caltrack/internal/adapter/memory"
	"caltrack/internal/adapter/postgres"
	"caltrack/internal/adapter/sqlite"
	"caltrack/internal/domain"
)

// Store is everything the application services need from persistence.
type Store interface {
	domain.UserRepository
	domain.FoodCatalog
	domain.MealRepository
	domain.WorkoutRepository
	io.Closer
}

// Backend names.
const (
	Memory   = "memory"
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// Backend reports which backend Open would use for url.
func Backend(url string) (string, error) {
	switch {
	case url == "":
		return Memory, nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return Postgres, nil
	case strings.HasPrefix(url, "sqlite://"), strings.HasPrefix(url, "file:"):
		return SQLite, nil
	}
	return "", fmt.Errorf("unsupported database url scheme: %q", url)
}

// Open connects the backend selected by url and seeds it with foods.
func Open(url string, foods []domain.FoodItem) (Store, error) {
	backend, err := Backend(url)
	if err != nil {
		return nil, err
	}

	switch backend {
	case Postgres:
		s, err := postgres.Open(url, foods)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return s, nil
	case SQLite:
		s, err := sqlite.Open(strings.TrimPrefix(url, "sqlite://"), foods)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return s, nil
	}
	return memory.New(foods), nil
}

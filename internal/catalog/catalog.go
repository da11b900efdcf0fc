// Package catalog loads the static food catalog that seeds every store.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"caltrack/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed foods.yaml
var defaultFoods []byte

type file struct {
	Foods []domain.FoodItem `yaml:"foods"`
}

// Default returns the embedded catalog.
func Default() ([]domain.FoodItem, error) {
	return Parse(defaultFoods)
}

// Load reads a catalog from a YAML file. An empty path yields the default.
func Load(path string) ([]domain.FoodItem, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog and checks that ids are present and unique.
// Order is preserved.
func Parse(data []byte) ([]domain.FoodItem, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(f.Foods))
	for i, item := range f.Foods {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog entry %d: missing id", i)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	if len(f.Foods) == 0 {
		return nil, errors.New("catalog is empty")
	}
	return f.Foods, nil
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"caltrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	foods, err := Default()
	require.NoError(t, err)
	require.Len(t, foods, 3)

	ids := []string{foods[0].ID, foods[1].ID, foods[2].ID}
	assert.Equal(t, []string{"rice", "dal", "roti"}, ids)
	assert.Equal(t, domain.FoodItem{ID: "roti", Name: "Roti", Calories: 100, Protein: 3.0, Fat: 1.5, Carbs: 20}, foods[2])
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.yaml")
	data := []byte("foods:\n  - id: egg\n    name: Egg\n    calories: 78\n    protein: 6.3\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	foods, err := Load(path)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Egg", foods[0].Name)
	assert.Equal(t, 0.0, foods[0].Carbs)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	foods, err := Load("")
	require.NoError(t, err)
	assert.Len(t, foods, 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "foods: [\n"},
		{"empty", "foods: []\n"},
		{"missing id", "foods:\n  - name: X\n    calories: 1\n"},
		{"duplicate id", "foods:\n  - id: a\n  - id: a\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

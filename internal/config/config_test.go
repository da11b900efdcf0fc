package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ADDR", "DATABASE_URL", "FOOD_CATALOG", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)

	opts, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", opts.Addr)
	assert.Empty(t, opts.DatabaseURL)
	assert.Empty(t, opts.FoodCatalog)
	assert.Equal(t, "info", opts.LogLevel)
}

func TestParse_Flags(t *testing.T) {
	clearEnv(t)

	opts, err := Parse([]string{"-a", ":9000", "-d", "sqlite://ledger.db", "-catalog", "foods.yaml", "-log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, ":9000", opts.Addr)
	assert.Equal(t, "sqlite://ledger.db", opts.DatabaseURL)
	assert.Equal(t, "foods.yaml", opts.FoodCatalog)
	assert.Equal(t, "debug", opts.LogLevel)
}

func TestParse_EnvOverridesFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDR", ":7000")
	t.Setenv("DATABASE_URL", "postgres://localhost/caltrack")

	opts, err := Parse([]string{"-a", ":9000"})
	require.NoError(t, err)
	assert.Equal(t, ":7000", opts.Addr)
	assert.Equal(t, "postgres://localhost/caltrack", opts.DatabaseURL)
}

func TestParse_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("LOG_LEVEL") //nolint:errcheck
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("LOG_LEVEL=warn\n"), 0o600))

	opts, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", opts.LogLevel)
}

func TestParse_BadFlag(t *testing.T) {
	clearEnv(t)
	_, err := Parse([]string{"-nope"})
	assert.Error(t, err)
}

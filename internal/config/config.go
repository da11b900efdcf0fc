// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables and an
// optional .env file.
package config

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr is the server's listening address (ip:port).
	Addr string

	// DatabaseURL selects the storage backend. Empty means in-memory,
	// postgres:// means PostgreSQL and sqlite:// or file: means SQLite.
	DatabaseURL string

	// FoodCatalog is a YAML file that replaces the built-in food catalog.
	FoodCatalog string

	// LogLevel is the minimum zap level to emit.
	LogLevel string
}

// Parse reads configuration from args (normally os.Args[1:]). Environment
// variables override flags. A .env file in the working directory is loaded
// first when present; variables already set in the environment win.
func Parse(args []string) (*Options, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	options := &Options{}
	flags := flag.NewFlagSet("caltrack", flag.ContinueOnError)
	flags.StringVar(&options.Addr, "a", ":8080", "run on ip:port server")
	flags.StringVar(&options.DatabaseURL, "d", "", "database url (empty for in-memory)")
	flags.StringVar(&options.FoodCatalog, "catalog", "", "path to food catalog yaml")
	flags.StringVar(&options.LogLevel, "log-level", "info", "log level")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if v := os.Getenv("ADDR"); v != "" {
		options.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		options.DatabaseURL = v
	}
	if v := os.Getenv("FOOD_CATALOG"); v != "" {
		options.FoodCatalog = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		options.LogLevel = v
	}

	return options, nil
}

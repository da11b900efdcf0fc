// Package main starts the caltrack HTTP server: it loads configuration,
// sets up logging, opens the selected store, seeds the food catalog and
// serves the JSON API until SIGINT or SIGTERM.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "caltrack/internal/adapter/http"
	"caltrack/internal/app"
	"caltrack/internal/catalog"
	"caltrack/internal/config"
	"caltrack/internal/db"
	"caltrack/internal/logger"

	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	options, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(2)
	}
	zapLogger := log.Log
	defer func() { _ = zapLogger.Sync() }()

	zapLogger.Info("starting caltrack",
		zap.String("version", cmp.Or(version, "N/A")),
		zap.String("build_date", cmp.Or(buildDate, "N/A")),
	)

	foods, err := catalog.Load(options.FoodCatalog)
	if err != nil {
		zapLogger.Fatal("cannot load food catalog", zap.Error(err))
	}

	backend, err := db.Backend(options.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("cannot select store", zap.Error(err))
	}
	store, err := db.Open(options.DatabaseURL, foods)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer func() { _ = store.Close() }()
	zapLogger.Info("store ready", zap.String("backend", backend), zap.Int("foods", len(foods)))

	authSvc := app.NewAuthService(store)
	foodSvc := app.NewFoodService(store)
	mealSvc := app.NewMealService(store, store, store, zapLogger)
	workoutSvc := app.NewWorkoutService(store, store)
	summarySvc := app.NewSummaryService(store, store)

	h := adapthttp.New(authSvc, foodSvc, mealSvc, workoutSvc, summarySvc, zapLogger).Handler()
	server := &http.Server{
		Addr:              options.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("listening", zap.String("addr", options.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Error("server stopped", zap.Error(err))
		}
		return
	case <-ctx.Done():
	}

	zapLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

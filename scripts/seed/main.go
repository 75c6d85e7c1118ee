package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/blaisecz/health-risk/internal/config"
	"github.com/blaisecz/health-risk/internal/repository"
	"github.com/blaisecz/health-risk/internal/seed"
)

func main() {
	cfg := config.Load()
	config.NewLogger(cfg, os.Stderr)

	db, err := config.NewDatabase(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := config.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := seed.Run(ctx, repository.NewPatientRepository(db), repository.NewMetricRepository(db), time.Now()); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("\nSample patient IDs for testing:")
	for _, id := range seed.DemoPatients() {
		fmt.Printf("  %s\n", id)
	}
}

// Command billing is a terminal presentation layer over the billing
// core: it seeds the in-memory store and renders the dashboard,
// invoice list and reports.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"limra/internal/domain/reports"
	"limra/internal/infrastructure/prefs"
	"limra/internal/infrastructure/storage/memory"
	"limra/internal/seed"
	"limra/pkg/logger"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       envOr("BILLING_LOG_LEVEL", "warn"),
		Development: os.Getenv("BILLING_LOG_DEV") == "true",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := logger.WithLogger(context.Background(), log)

	store := memory.NewStore(
		memory.WithPreferences(prefs.NewFileStore(envOr("BILLING_PREFS_FILE", ".billing/prefs.json"))),
		memory.WithLogger(log.WithComponent("store")),
	)
	seed.Load(ctx, store)

	app := &application{
		ctx:     ctx,
		store:   store,
		reports: reports.NewService(store),
	}

	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

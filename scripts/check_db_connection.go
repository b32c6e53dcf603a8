//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"

	"dining-companion/internal/config"
	"dining-companion/internal/database"
	"dining-companion/internal/repository"

	"github.com/rs/zerolog"
)

// Connects with the DB_* settings of the API server, creates the catalogue
// schema if needed and reports what is stored.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger := config.NewLogger(config.LoggerConfig{Level: "warn", Format: "console"})

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully connected to database: %s\n", dbName)

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Schema check failed: %v\n", err)
		os.Exit(1)
	}

	locations, err := repository.NewLocationRepository(pool, zerolog.Nop()).List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Query failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nStored locations: %d\n", len(locations))
	for _, loc := range locations {
		fmt.Printf("  - %s %s (%d menu items)\n", loc.ID, loc.Name, len(loc.Menu))
	}
}

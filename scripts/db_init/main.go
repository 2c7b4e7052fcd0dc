package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	dbfs "github.com/garnizeh/folio/db"
	"github.com/garnizeh/folio/internal/config"
	"github.com/garnizeh/folio/internal/db"
)

func main() {
	configPath := flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Initialize(ctx, database, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		fmt.Fprintf(os.Stderr, "Initialize error: %v\n", err)
		os.Exit(1)
	}

	for _, table := range db.RequiredTables {
		var n int
		if err := database.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
			fmt.Fprintf(os.Stderr, "Count %s: %v\n", table, err)
			os.Exit(1)
		}
		fmt.Printf("%-10s %d\n", table, n)
	}

	fmt.Printf("Database %s initialized successfully.\n", cfg.DatabasePath)
}

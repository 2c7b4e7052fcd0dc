package db_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	dbfs "github.com/garnizeh/folio/db"
	"github.com/garnizeh/folio/internal/config"
	"github.com/garnizeh/folio/internal/db"
)

// TestInitializeOnStart_TempWorkdir follows the server start sequence from a
// config file through store initialization, keeping every file in a temp dir.
func TestInitializeOnStart_TempWorkdir(t *testing.T) {
	ctx := context.Background()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "portfolio.db")

	cfgY := "port: \"0\"\n" +
		"database_path: '" + dbPath + "'\n"

	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfgY), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, cfg.APITimeout)
	defer dbCancel()

	d, err := db.New(dbCtx, cfg.DatabasePath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer d.Close()

	if err := db.Initialize(dbCtx, d, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	var count int
	row := d.QueryRow(ctx, `SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name IN ('profile', 'skills', 'projects', 'messages')`)
	if err := row.Scan(&count); err != nil {
		t.Fatalf("scan table count: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 tables, got %d", count)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database file on disk: %v", err)
	}
}

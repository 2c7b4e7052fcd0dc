package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/garnizeh/folio/api"
	dbfs "github.com/garnizeh/folio/db"
	"github.com/garnizeh/folio/internal/config"
	"github.com/garnizeh/folio/internal/db"
	"github.com/garnizeh/folio/internal/logging"
	"github.com/garnizeh/folio/internal/repository/sqlite"
	"github.com/garnizeh/folio/web"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	// .env is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Ignoring .env: %v", err)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)
	api.SetLogger(logger)

	logger.Info("starting folio server", slog.String("version", version), slog.String("build_time", buildTime))

	ctx := context.Background()

	// Open database connection
	dbCtx, dbCancel := context.WithTimeout(ctx, cfg.APITimeout)
	database, err := db.New(dbCtx, cfg.DatabasePath, db.WithLogger(logger))
	if err != nil {
		dbCancel()
		logger.Error("failed to open database", slog.String("path", cfg.DatabasePath), slog.Any("err", err))
		os.Exit(1)
	}
	if err := db.Initialize(dbCtx, database, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		dbCancel()
		database.Close()
		logger.Error("failed to initialize database", slog.Any("err", err))
		os.Exit(1)
	}
	dbCancel()

	tmpl, err := web.ParseTemplates()
	if err != nil {
		database.Close()
		logger.Error("failed to parse templates", slog.Any("err", err))
		os.Exit(1)
	}

	repo := sqlite.New(database, logger)
	handler := api.SetupRoutes(cfg, version, buildTime, repo, tmpl)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", cfg.Addr()), slog.String("database", cfg.DatabasePath))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server failed", slog.Any("err", err))
		exitCode = 1
	}

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("err", err))
		exitCode = 1
	}

	// Close database connection
	if err := database.Close(); err != nil {
		logger.Error("error closing database", slog.Any("err", err))
	}

	logger.Info("server exited")
	if exitCode != 0 {
		logCloser.Close()
		os.Exit(exitCode)
	}
}

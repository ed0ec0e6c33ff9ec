package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/maltedev/material-scraper/internal/config"
	"github.com/maltedev/material-scraper/internal/logging"
	"github.com/maltedev/material-scraper/internal/scraper"
	"github.com/maltedev/material-scraper/internal/storage"
)

func main() {
	var (
		configPath = flag.String("config", "config/scraper_config.yaml", "Path to the YAML run configuration")
		minItems   = flag.Int("min-items", 100, "Minimum total items to aim for across all categories")
		outPath    = flag.String("out", "", "Catalog output path (default <data dir>/catalog.json)")
		headless   = flag.Bool("headless", true, "Run the browser in headless mode")
	)
	flag.Parse()

	// Optional .env for SCRAPER_* and LOG_* overrides.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !*headless {
		cfg.Headless = false
	}

	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("starting material scraper", "config", *configPath, "min_items", *minItems)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutdown signal received, finishing with collected items")
		cancel()
	}()

	svc := scraper.NewService(cfg)
	catalog, err := svc.Run(ctx, *minItems)
	if err != nil {
		logger.Error("scrape run failed", "error", err)
		os.Exit(1)
	}

	out := *outPath
	if out == "" {
		out = filepath.Join(cfg.Debug.DataDir, "catalog.json")
	}
	if err := storage.WriteCatalog(catalog, out); err != nil {
		logger.Error("failed to write catalog", "path", out, "error", err)
		os.Exit(1)
	}

	logger.Info("catalog written", "path", out, "items", catalog.Count)
}

package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/maltedev/material-scraper/internal/api"
	"github.com/maltedev/material-scraper/internal/logging"
)

func main() {
	var (
		addr        = flag.String("addr", ":8080", "Listen address")
		catalogPath = flag.String("catalog", "data/catalog.json", "Path to the catalog JSON produced by the scraper")
	)
	flag.Parse()

	_ = godotenv.Load()
	logger := logging.Setup("info", "text")

	handlers := api.NewHandlers(*catalogPath)
	server := &http.Server{
		Addr:         *addr,
		Handler:      handlers.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("catalog server listening", "addr", *addr, "catalog", *catalogPath)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/maltedev/material-scraper/internal/storage"
)

// Handlers serves the catalog document produced by the scraper. Read-only:
// runs are started from the CLI, not over HTTP.
type Handlers struct {
	catalogPath string
	logger      *slog.Logger
}

func NewHandlers(catalogPath string) *Handlers {
	return &Handlers{
		catalogPath: catalogPath,
		logger:      slog.Default().With("component", "api"),
	}
}

func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}))

	r.Get("/health", h.Health)
	r.Get("/api/catalog", h.GetCatalog)
	return r
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetCatalog returns the latest catalog, 404 when no run has produced one.
func (h *Handlers) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := storage.ReadCatalog(h.catalogPath)
	if err != nil {
		if os.IsNotExist(err) {
			h.respondError(w, http.StatusNotFound, "no catalog has been generated yet")
			return
		}
		h.logger.Error("failed to read catalog", "path", h.catalogPath, "error", err)
		h.respondError(w, http.StatusInternalServerError, "failed to read catalog")
		return
	}
	h.respondJSON(w, http.StatusOK, catalog)
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

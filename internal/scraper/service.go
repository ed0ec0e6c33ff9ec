package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/maltedev/material-scraper/internal/browser"
	"github.com/maltedev/material-scraper/internal/config"
	"github.com/maltedev/material-scraper/internal/dom"
	"github.com/maltedev/material-scraper/internal/models"
)

const consentTimeout = 2 * time.Second

// Service assembles the catalog: one browser session, one page, suppliers
// and categories traversed strictly in configured order.
type Service struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg:    cfg,
		logger: slog.Default().With("component", "service"),
	}
}

// Run launches the browser, scrapes every configured supplier and category,
// and returns the deduplicated catalog. Partial results survive category
// failures and cancellation.
func (s *Service) Run(ctx context.Context, minItems int) (*models.Catalog, error) {
	b, err := browser.New(&browser.Options{
		Headless:       s.cfg.Headless,
		UserAgent:      s.cfg.UserAgent,
		Timeout:        30 * time.Second,
		ViewportWidth:  1920,
		ViewportHeight: 1080,
		Locale:         "fr-FR",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	defer b.Close()

	page, err := b.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return s.Collect(ctx, page, minItems), nil
}

// Collect runs the traversal against an already-open page. Split out from
// Run so the traversal logic is testable without a live browser.
func (s *Service) Collect(ctx context.Context, page dom.Page, minItems int) *models.Catalog {
	runID := uuid.NewString()[:8]
	logger := s.logger.With("run_id", runID)

	var shots *Screenshotter
	if s.cfg.Debug.Screenshots {
		if err := os.MkdirAll(s.cfg.Debug.DataDir, 0o755); err != nil {
			logger.Warn("cannot create data dir, screenshots disabled", "error", err)
		} else {
			shots = NewScreenshotter(s.cfg.Debug.DataDir, runID)
		}
	}

	perCategory := minItems / max(1, s.cfg.TotalCategories())
	if perCategory < 1 {
		perCategory = 1
	}
	logger.Info("starting run",
		"suppliers", len(s.cfg.Suppliers), "categories", s.cfg.TotalCategories(),
		"per_category_target", perCategory)

	ctrl := NewController(page)
	var all []models.Listing

	for _, sup := range s.cfg.Suppliers {
		if ctx.Err() != nil {
			break
		}

		strat := StrategyFor(sup.Supplier, sup.BaseURL, shots)
		s.dismissConsent(page, sup, logger)

		for _, cat := range sup.Categories {
			if ctx.Err() != nil {
				break
			}
			logger.Info("scraping category", "supplier", sup.Supplier, "category", cat.Name)
			items, err := ctrl.ScrapeCategory(ctx, strat, sup, cat, perCategory)
			if err != nil {
				logger.Warn("category traversal ended early",
					"supplier", sup.Supplier, "category", cat.Name, "error", err)
			}
			all = append(all, items...)
		}
	}

	all = models.Dedupe(all)
	logger.Info("run finished", "items", len(all))
	return models.NewCatalog(all)
}

// dismissConsent is a best-effort pre-step for suppliers whose cookie
// banner blocks the listing grid. Tries each configured consent button
// briefly and gives up silently.
func (s *Service) dismissConsent(page dom.Page, sup config.Supplier, logger *slog.Logger) {
	if len(sup.ConsentButtons) == 0 {
		return
	}
	if err := page.Navigate(sup.BaseURL); err != nil {
		logger.Debug("consent pre-step navigation failed", "supplier", sup.Supplier, "error", err)
		return
	}
	for _, selector := range sup.ConsentButtons {
		if err := page.ClickVisible(selector, consentTimeout); err == nil {
			logger.Debug("dismissed cookie banner", "supplier", sup.Supplier, "selector", selector)
			return
		}
	}
}

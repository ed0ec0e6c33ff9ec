package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maltedev/material-scraper/internal/config"
	"github.com/maltedev/material-scraper/internal/dom"
	"github.com/maltedev/material-scraper/internal/models"
)

const (
	clickTimeout = 5 * time.Second
	idleTimeout  = 10 * time.Second
	loadMoreWait = 600 * time.Millisecond

	// Infinite scroll stops early after this many consecutive steps with
	// zero net-new listings.
	barrenScrollLimit = 3
)

// Controller drives one traversal strategy over a live category page,
// re-extracting cards after every step and deduplicating by listing key.
type Controller struct {
	page   dom.Page
	logger *slog.Logger
}

func NewController(page dom.Page) *Controller {
	return &Controller{
		page:   page,
		logger: slog.Default().With("component", "paginator"),
	}
}

// ScrapeCategory traverses one category until the target count is reached,
// the page/step budget is exhausted, or the paging control disappears.
// Listings collected before a failed step are always returned.
func (c *Controller) ScrapeCategory(ctx context.Context, strat Strategy, sup config.Supplier, cat config.Category, target int) ([]models.Listing, error) {
	if err := c.page.Navigate(cat.URL); err != nil {
		return nil, fmt.Errorf("failed to open category %q: %w", cat.Name, err)
	}

	cascades := CascadesFor(cat.Selectors)
	seen := make(map[models.Key]struct{})
	var items []models.Listing

	collect := func() int {
		added := 0
		for _, card := range c.page.QueryAll(cat.Selectors.Card) {
			listing := strat.Extract(card, cat.Name, cascades)
			if !listing.Includable(sup.BaseURL) {
				if listing.ExtractError != "" {
					c.logger.Warn("card extraction failed",
						"supplier", sup.Supplier, "category", cat.Name, "error", listing.ExtractError)
				}
				continue
			}
			key := listing.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			items = append(items, *listing)
			added++
		}
		return added
	}

	collect()

	steps := 0
	switch cat.Paging.Mode {
	case config.ModePagination:
		for len(items) < target && steps < cat.Paging.MaxPages {
			if err := ctx.Err(); err != nil {
				return items, err
			}
			steps++
			if !c.nextPage(cat.Paging.NextButton) {
				break
			}
			collect()
		}

	case config.ModeLoadMore:
		for len(items) < target && steps < cat.Paging.MaxPages {
			if err := ctx.Err(); err != nil {
				return items, err
			}
			steps++
			if !c.loadMore(cat.Paging.LoadMoreButton) {
				break
			}
			collect()
		}

	case config.ModeInfiniteScroll:
		barren := 0
		for steps < cat.Paging.ScrollSteps && len(items) < target {
			if err := ctx.Err(); err != nil {
				return items, err
			}
			steps++
			if err := c.page.ScrollToBottom(); err != nil {
				c.logger.Warn("scroll failed", "category", cat.Name, "error", err)
				break
			}
			time.Sleep(cat.Paging.ScrollWait())
			if collect() == 0 {
				barren++
				if barren >= barrenScrollLimit {
					break
				}
			} else {
				barren = 0
			}
		}
		collect()
	}

	c.logger.Info("category done",
		"supplier", sup.Supplier, "category", cat.Name, "items", len(items), "steps", steps)
	return items, nil
}

// nextPage activates the "next" control and waits for the page to settle.
// A missing/inert control or a failed click ends the traversal, never the run.
func (c *Controller) nextPage(selector string) bool {
	if selector == "" {
		return false
	}
	if err := c.page.ClickVisible(selector, clickTimeout); err != nil {
		if err != dom.ErrNoMatch {
			c.logger.Debug("next button click failed", "selector", selector, "error", err)
		}
		return false
	}
	if err := c.page.WaitIdle(idleTimeout); err != nil {
		c.logger.Debug("network idle wait timed out", "error", err)
	}
	return true
}

// loadMore activates the "load more" control; content appends in place so a
// short fixed delay replaces the navigation wait.
func (c *Controller) loadMore(selector string) bool {
	if selector == "" {
		return false
	}
	if err := c.page.ClickVisible(selector, clickTimeout); err != nil {
		if err != dom.ErrNoMatch {
			c.logger.Debug("load more click failed", "selector", selector, "error", err)
		}
		return false
	}
	time.Sleep(loadMoreWait)
	return true
}

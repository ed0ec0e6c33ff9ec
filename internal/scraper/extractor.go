package scraper

import (
	"strings"

	"github.com/maltedev/material-scraper/internal/dom"
	"github.com/maltedev/material-scraper/internal/models"
	"github.com/maltedev/material-scraper/internal/parser"
)

// Strategy extracts one Listing from a rendered product card. One strategy
// is resolved per supplier before traversal starts; most suppliers share
// the generic cascade-driven implementation.
type Strategy interface {
	Extract(card dom.Element, category string, sel Cascades) *models.Listing
}

// StrategyFor resolves the extraction strategy for a supplier. Suppliers
// with DOM shapes the generic cascades cannot handle get a bespoke
// implementation; everyone else shares the generic one.
func StrategyFor(supplier, baseURL string, shots *Screenshotter) Strategy {
	generic := &genericStrategy{
		supplier: supplier,
		baseURL:  baseURL,
		shots:    shots,
	}
	switch supplier {
	case castoramaSupplier:
		return &castoramaStrategy{generic: generic}
	default:
		return generic
	}
}

type genericStrategy struct {
	supplier string
	baseURL  string
	shots    *Screenshotter
}

func (g *genericStrategy) Extract(card dom.Element, category string, sel Cascades) *models.Listing {
	listing := models.NewListing(g.supplier, category)

	listing.Name = firstText(card, sel.Name)
	if listing.Name == "" {
		// Some tiles only carry the product name in a title attribute.
		listing.Name = firstAttr(card, []string{"a[title]", "[title]"}, "title")
	}

	if priceText := firstText(card, sel.Price); priceText != "" {
		currency, amount, ok := parser.ParsePrice(priceText)
		listing.Currency = currency
		if ok {
			listing.Price = &amount
		}
	}

	listing.Brand = firstText(card, sel.Brand)
	listing.Unit = firstText(card, sel.Unit)
	listing.ImageURL = resolveImage(card, sel.Image)

	href := firstAttr(card, sel.Link, "href")
	listing.URL = parser.ResolveURL(href, g.baseURL)

	if g.shots != nil {
		listing.ScreenshotPath = g.shots.Capture(card, g.supplier)
	}

	return listing
}

// firstText walks the cascade and returns the cleaned text of the first
// candidate with a non-empty match. Misses and engine failures on
// individual candidates just move the cascade along.
func firstText(card dom.Element, selectors []string) string {
	for _, css := range selectors {
		matches := card.QueryAll(css)
		if len(matches) == 0 {
			continue
		}
		text, ok := matches[0].Text()
		if !ok {
			continue
		}
		if cleaned := parser.CleanText(text); cleaned != "" {
			return cleaned
		}
	}
	return ""
}

// firstAttr is firstText for attribute reads.
func firstAttr(card dom.Element, selectors []string, attr string) string {
	for _, css := range selectors {
		matches := card.QueryAll(css)
		if len(matches) == 0 {
			continue
		}
		value, ok := matches[0].Attr(attr)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

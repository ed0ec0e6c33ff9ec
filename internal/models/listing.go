package models

import (
	"time"
)

// ExtractErrorName marks a listing produced when a bespoke supplier
// extractor failed for a whole card.
const ExtractErrorName = "EXTRACTION_ERROR"

// Listing is one scraped product occurrence from a category page.
type Listing struct {
	Supplier       string   `json:"supplier"`
	Category       string   `json:"category"`
	Name           string   `json:"name"`
	Price          *float64 `json:"price"`
	Currency       string   `json:"currency"`
	URL            string   `json:"url"`
	Brand          string   `json:"brand"`
	Unit           string   `json:"unit"`
	ImageURL       string   `json:"image_url"`
	Timestamp      int64    `json:"timestamp"`
	ScreenshotPath string   `json:"screenshot_path,omitempty"`
	ExtractError   string   `json:"extract_error,omitempty"`
}

// Key identifies a unique listing for deduplication.
type Key struct {
	Supplier string
	URL      string
	Name     string
	Unit     string
}

func (l *Listing) Key() Key {
	return Key{
		Supplier: l.Supplier,
		URL:      l.URL,
		Name:     l.Name,
		Unit:     l.Unit,
	}
}

// Includable reports whether the listing passes the inclusion invariant:
// a name, an absolute URL, and a URL that is not the bare supplier base
// (the extraction failure sentinel).
func (l *Listing) Includable(baseURL string) bool {
	return l.Name != "" && l.URL != "" && l.URL != baseURL
}

func NewListing(supplier, category string) *Listing {
	return &Listing{
		Supplier:  supplier,
		Category:  category,
		Timestamp: time.Now().Unix(),
	}
}

// ErrorListing is the sentinel substituted when a bespoke extractor fails
// for an entire card. The caller's per-card loop keeps going; the sentinel
// never survives the inclusion filter because its URL equals the base URL.
func ErrorListing(supplier, category, baseURL, diagnostic string) *Listing {
	zero := 0.0
	return &Listing{
		Supplier:     supplier,
		Category:     category,
		Name:         ExtractErrorName,
		Price:        &zero,
		Currency:     "€",
		URL:          baseURL,
		Timestamp:    time.Now().Unix(),
		ExtractError: diagnostic,
	}
}

// Catalog is the output document for one run.
type Catalog struct {
	ScrapedAt int64     `json:"scraped_at"`
	Count     int       `json:"count"`
	Items     []Listing `json:"items"`
}

func NewCatalog(items []Listing) *Catalog {
	if items == nil {
		items = []Listing{}
	}
	return &Catalog{
		ScrapedAt: time.Now().Unix(),
		Count:     len(items),
		Items:     items,
	}
}

// Dedupe returns the listings with duplicate keys removed, keeping the
// first-seen instance in traversal order.
func Dedupe(items []Listing) []Listing {
	seen := make(map[Key]struct{}, len(items))
	out := make([]Listing, 0, len(items))
	for _, item := range items {
		key := item.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

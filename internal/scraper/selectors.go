package scraper

import "github.com/maltedev/material-scraper/internal/config"

// Cascades are the ordered per-field selector lists tried against a card
// until one yields a non-empty result.
type Cascades struct {
	Name  []string
	Price []string
	Brand []string
	Unit  []string
	Image []string
	Link  []string
}

// DefaultCascades covers the DOM shapes shared by the configured retailers.
// Individual categories can override any list from YAML.
func DefaultCascades() Cascades {
	return Cascades{
		Name: []string{
			"[data-test-id='product-tile-title']",
			"[data-test-id='product-title']",
			"h3",
			".product-title",
			".title",
			"a[title]",
		},
		Price: []string{
			"[data-test-id='price']",
			"[data-test-id='price-first-end-currency']",
			".price",
			".product-price",
			".money",
			"span:has-text('€')",
		},
		Brand: []string{
			"[data-test-id='brand']",
			"[data-test-id='manufacturer']",
			".product-brand",
			".brand",
		},
		Unit: []string{
			"[data-test-id*='unit']",
			"[data-test-id*='pack']",
			".unit",
			".pack-size",
			".volume",
			".contenance",
			".size",
		},
		Image: []string{
			"img[src]",
			"img[data-srcset]",
			"img[srcset]",
			".product-image img",
			".thumbnail img",
			".product-card img",
			"img[data-src]",
			"img[data-original]",
		},
		Link: []string{
			"a[href*='/p/']",
			"a[href*='-pr']",
			"a[href]",
		},
	}
}

// CascadesFor merges per-category overrides into the defaults. A non-empty
// list replaces the whole default cascade for that field.
func CascadesFor(sel config.Selectors) Cascades {
	c := DefaultCascades()
	if len(sel.Name) > 0 {
		c.Name = sel.Name
	}
	if len(sel.Price) > 0 {
		c.Price = sel.Price
	}
	if len(sel.Brand) > 0 {
		c.Brand = sel.Brand
	}
	if len(sel.Unit) > 0 {
		c.Unit = sel.Unit
	}
	if len(sel.Image) > 0 {
		c.Image = sel.Image
	}
	if len(sel.Link) > 0 {
		c.Link = sel.Link
	}
	return c
}

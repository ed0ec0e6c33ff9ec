package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/maltedev/material-scraper/internal/dom"
	"github.com/maltedev/material-scraper/internal/models"
)

const (
	castoramaSupplier = "Castorama"
	castoramaCDN      = "media.castorama.fr"
)

var castoramaImagePattern = regexp.MustCompile(`https://media\.castorama\.fr/[^,\s]+`)

// castoramaStrategy layers Castorama's CDN image fallback on top of the
// generic extraction. Their tiles hide the real image URL in assorted lazy
// attributes that only the CDN hostname identifies reliably.
type castoramaStrategy struct {
	generic *genericStrategy
}

func (s *castoramaStrategy) Extract(card dom.Element, category string, sel Cascades) (listing *models.Listing) {
	// A card that blows up must not abort the whole traversal; substitute
	// the sentinel and let the caller's inclusion filter drop it.
	defer func() {
		if r := recover(); r != nil {
			listing = models.ErrorListing(
				s.generic.supplier, category, s.generic.baseURL, fmt.Sprintf("%v", r))
		}
	}()

	listing = s.generic.Extract(card, category, sel)
	if listing.ImageURL == "" {
		listing.ImageURL = s.cdnImage(card)
	}
	return listing
}

func (s *castoramaStrategy) cdnImage(card dom.Element) string {
	for _, img := range card.QueryAll("img") {
		for _, attr := range []string{"srcset", "data-srcset", "src", "data-src"} {
			value, ok := img.Attr(attr)
			if !ok || !strings.Contains(value, castoramaCDN) {
				continue
			}
			if url := castoramaImagePattern.FindString(value); url != "" {
				return url
			}
		}
	}
	return ""
}

package scraper

import (
	"github.com/maltedev/material-scraper/internal/dom"
	"github.com/maltedev/material-scraper/internal/parser"
)

var (
	directImageAttrs = []string{"src", "data-src", "data-original"}
	srcsetAttrs      = []string{"srcset", "data-srcset"}
)

// resolveImage finds a usable image URL for a card: direct single-valued
// source attributes first, then srcset-style multi-URL attributes across
// every image candidate. Inlined data URIs never qualify. Returns "" when
// nothing matches.
func resolveImage(card dom.Element, imageSelectors []string) string {
	for _, attr := range directImageAttrs {
		if v := firstAttr(card, imageSelectors, attr); v != "" && !parser.IsDataURI(v) {
			return v
		}
	}

	for _, attr := range srcsetAttrs {
		for _, css := range imageSelectors {
			for _, img := range card.QueryAll(css) {
				value, ok := img.Attr(attr)
				if !ok || value == "" {
					continue
				}
				if url := parser.FirstSecureURL(value); url != "" {
					return url
				}
			}
		}
	}

	return ""
}

package parser

import "strings"

// ResolveURL joins a possibly-relative href against a supplier base URL.
//
// Policy for the edge cases the scraped sites produce:
//   - empty href resolves to "" so the listing fails the inclusion filter
//     downstream (a missing href is an extraction failure, not a product)
//   - absolute hrefs (any scheme) pass through verbatim
//   - protocol-relative hrefs inherit the base URL's scheme
func ResolveURL(href, baseURL string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		scheme := "https:"
		if i := strings.Index(baseURL, "//"); i > 0 {
			scheme = baseURL[:i]
		}
		return scheme + href
	}
	base := strings.TrimRight(baseURL, "/")
	if strings.HasPrefix(href, "/") {
		return base + href
	}
	return base + "/" + href
}

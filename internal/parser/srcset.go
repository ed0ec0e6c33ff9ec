package parser

import (
	"regexp"
	"strings"
)

var secureURLPattern = regexp.MustCompile(`https://[^,\s]+`)

// FirstSecureURL scans a srcset-style attribute value (comma separated
// "url descriptor" pairs) and returns the first absolute https URL that is
// not an inlined data URI. Returns "" when none is present.
func FirstSecureURL(srcset string) string {
	if !strings.Contains(srcset, "https://") {
		return ""
	}
	for _, candidate := range strings.Split(srcset, ",") {
		if m := secureURLPattern.FindString(candidate); m != "" && !strings.HasPrefix(m, "data:image") {
			return m
		}
	}
	return ""
}

// IsDataURI reports whether an image source is an inlined/embedded data URI.
func IsDataURI(src string) bool {
	return strings.HasPrefix(src, "data:image")
}

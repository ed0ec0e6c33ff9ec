package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Currency symbols recognized in price text, checked in this order.
var currencySymbols = []string{"€", "$", "£", "₹"}

var (
	// "29€90" - the currency symbol sits between whole and cents.
	embeddedAmountPattern = regexp.MustCompile(`(\d+)\s*[€$£₹]\s*(\d{2})\b`)
	// "1 320,50", "1.234,56", "1,999.00" - digits grouped by spaces, dots or
	// commas, at least two digits total.
	numberGroupPattern = regexp.MustCompile(`(\d[\d\s.,]*\d)`)
	// Last resort: whole and cents split by any non-digit run.
	splitAmountPattern = regexp.MustCompile(`(\d+)\D+(\d{2})`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// CleanText collapses runs of whitespace into single spaces and trims.
// Idempotent; returns "" for empty input.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// ParsePrice extracts a currency symbol and amount from free-form price
// text. Handles "49,90 €", "€49.90", "1 349,99€", "29€90" and "$1,999.00".
// ok is false when no amount could be parsed; a detected currency symbol is
// still returned in that case. Never fails hard.
func ParsePrice(text string) (currency string, amount float64, ok bool) {
	if text == "" {
		return "", 0, false
	}

	t := strings.ReplaceAll(text, "\u00a0", " ")
	t = strings.ReplaceAll(t, "\u202f", " ")
	t = strings.TrimSpace(t)

	for _, sym := range currencySymbols {
		if strings.Contains(t, sym) {
			currency = sym
			break
		}
	}

	// The embedded form must win over the plain number group, which would
	// otherwise read "29€90" as 29.
	if m := embeddedAmountPattern.FindStringSubmatch(t); m != nil {
		if currency == "" {
			currency = "€"
		}
		if v, err := strconv.ParseFloat(m[1]+"."+m[2], 64); err == nil {
			return currency, v, true
		}
	}

	if m := numberGroupPattern.FindStringSubmatch(t); m != nil {
		num := strings.ReplaceAll(m[1], " ", "")
		switch {
		case strings.Contains(num, ",") && strings.Contains(num, "."):
			// European convention: "1.234,56" -> "1234.56"
			num = strings.ReplaceAll(num, ".", "")
			num = strings.ReplaceAll(num, ",", ".")
		case strings.Count(num, ",") == 1:
			num = strings.Replace(num, ",", ".", 1)
		case strings.Contains(num, ","):
			num = strings.ReplaceAll(num, ",", "")
		}
		if v, err := strconv.ParseFloat(num, 64); err == nil {
			return currency, v, true
		}
	}

	// The symbol may sit between whole and cents ("29€90").
	if m := splitAmountPattern.FindStringSubmatch(t); m != nil {
		if currency == "" {
			currency = "€"
		}
		if v, err := strconv.ParseFloat(m[1]+"."+m[2], 64); err == nil {
			return currency, v, true
		}
		return currency, 0, false
	}

	return currency, 0, false
}

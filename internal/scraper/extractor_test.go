package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maltedev/material-scraper/internal/config"
	"github.com/maltedev/material-scraper/internal/dom"
	"github.com/maltedev/material-scraper/internal/models"
)

func cardFromHTML(t *testing.T, html, cardSelector string) dom.Element {
	t.Helper()
	root, err := dom.ParseHTML(html)
	require.NoError(t, err)
	cards := root.QueryAll(cardSelector)
	require.NotEmpty(t, cards, "fixture must contain a card matching %q", cardSelector)
	return cards[0]
}

func TestGenericExtract(t *testing.T) {
	card := cardFromHTML(t, `
		<div class="product-card">
			<h3>Carrelage sol gris 30x30</h3>
			<div class="price">49,90 €</div>
			<div class="brand">Artens</div>
			<div class="unit">m²</div>
			<img src="https://cdn.example.com/tile.jpg">
			<a href="/p/carrelage-123">Voir</a>
		</div>`, ".product-card")

	strat := StrategyFor("TestSupplier", "https://www.example.com", nil)
	listing := strat.Extract(card, "Carrelage", DefaultCascades())

	assert.Equal(t, "TestSupplier", listing.Supplier)
	assert.Equal(t, "Carrelage", listing.Category)
	assert.Equal(t, "Carrelage sol gris 30x30", listing.Name)
	require.NotNil(t, listing.Price)
	assert.InDelta(t, 49.90, *listing.Price, 0.001)
	assert.Equal(t, "€", listing.Currency)
	assert.Equal(t, "Artens", listing.Brand)
	assert.Equal(t, "m²", listing.Unit)
	assert.Equal(t, "https://cdn.example.com/tile.jpg", listing.ImageURL)
	assert.Equal(t, "https://www.example.com/p/carrelage-123", listing.URL)
	assert.NotZero(t, listing.Timestamp)
	assert.True(t, listing.Includable("https://www.example.com"))
}

func TestGenericExtractNameFromTitleAttribute(t *testing.T) {
	card := cardFromHTML(t, `
		<div class="product-card">
			<a title="Peinture blanche mate 10L" href="/p/peinture-9"></a>
			<div class="price">29€90</div>
		</div>`, ".product-card")

	strat := StrategyFor("TestSupplier", "https://www.example.com", nil)
	listing := strat.Extract(card, "Peinture", DefaultCascades())

	assert.Equal(t, "Peinture blanche mate 10L", listing.Name)
	require.NotNil(t, listing.Price)
	assert.InDelta(t, 29.90, *listing.Price, 0.001)
}

func TestGenericExtractUnparsablePriceKeepsCurrency(t *testing.T) {
	card := cardFromHTML(t, `
		<div class="product-card">
			<h3>Produit</h3>
			<div class="price">€</div>
			<a href="/p/x">x</a>
		</div>`, ".product-card")

	strat := StrategyFor("TestSupplier", "https://www.example.com", nil)
	listing := strat.Extract(card, "C", DefaultCascades())

	assert.Nil(t, listing.Price)
	assert.Equal(t, "€", listing.Currency)
}

func TestGenericExtractMissingFields(t *testing.T) {
	card := cardFromHTML(t, `<div class="product-card"><p>nothing useful</p></div>`, ".product-card")

	strat := StrategyFor("TestSupplier", "https://www.example.com", nil)
	listing := strat.Extract(card, "C", DefaultCascades())

	assert.Empty(t, listing.Name)
	assert.Nil(t, listing.Price)
	assert.Empty(t, listing.URL)
	assert.False(t, listing.Includable("https://www.example.com"))
}

func TestResolveImageSkipsDataURI(t *testing.T) {
	card := cardFromHTML(t, `
		<div class="product-card">
			<img src="data:image/gif;base64,R0lGOD"
			     srcset="data:image/gif;base64,R0lGOD 1x, https://cdn.example.com/real.jpg 2x">
		</div>`, ".product-card")

	got := resolveImage(card, DefaultCascades().Image)
	assert.Equal(t, "https://cdn.example.com/real.jpg", got)
}

func TestResolveImagePrefersDirectAttributes(t *testing.T) {
	card := cardFromHTML(t, `
		<div class="product-card">
			<img data-src="https://cdn.example.com/lazy.jpg" srcset="https://cdn.example.com/other.jpg 1x">
		</div>`, ".product-card")

	got := resolveImage(card, DefaultCascades().Image)
	assert.Equal(t, "https://cdn.example.com/lazy.jpg", got)
}

func TestCastoramaCDNImageFallback(t *testing.T) {
	card := cardFromHTML(t, `
		<div class="product-card">
			<h3>Parquet chêne</h3>
			<div class="price">39,99 €</div>
			<img data-srcset="https://media.castorama.fr/is/image/Castorama/parquet?x=1 1x">
			<a href="/parquet-pr12">x</a>
		</div>`, ".product-card")

	strat := StrategyFor("Castorama", "https://www.castorama.fr", nil)

	// Category override narrows the image cascade past the card's img, so
	// only the CDN fallback can find the image.
	sel := DefaultCascades()
	sel.Image = []string{".product-visual img"}
	listing := strat.Extract(card, "Parquet", sel)

	assert.Equal(t, "Parquet chêne", listing.Name)
	assert.Equal(t, "https://media.castorama.fr/is/image/Castorama/parquet?x=1", listing.ImageURL)
}

// bombElement simulates a render-engine failure that escapes the cascade
// guards while a bespoke extractor walks a card.
type bombElement struct{}

func (bombElement) Text() (string, bool)           { return "", false }
func (bombElement) Attr(string) (string, bool)     { return "", false }
func (bombElement) QueryAll(string) []dom.Element  { panic("element detached mid-extraction") }
func (bombElement) Screenshot(string) error        { return dom.ErrUnsupported }

func TestCastoramaSentinelOnPanic(t *testing.T) {
	strat := StrategyFor("Castorama", "https://www.castorama.fr", nil)

	listing := strat.Extract(bombElement{}, "Parquet", DefaultCascades())

	require.NotNil(t, listing)
	assert.Equal(t, models.ExtractErrorName, listing.Name)
	require.NotNil(t, listing.Price)
	assert.Equal(t, 0.0, *listing.Price)
	assert.Equal(t, "€", listing.Currency)
	assert.Equal(t, "https://www.castorama.fr", listing.URL)
	assert.Contains(t, listing.ExtractError, "detached")
	assert.False(t, listing.Includable("https://www.castorama.fr"))
}

func TestStrategyForSelection(t *testing.T) {
	_, isCastorama := StrategyFor("Castorama", "https://www.castorama.fr", nil).(*castoramaStrategy)
	assert.True(t, isCastorama)

	_, isGeneric := StrategyFor("Leroy Merlin", "https://www.leroymerlin.fr", nil).(*genericStrategy)
	assert.True(t, isGeneric)
}

func TestCascadesForOverrides(t *testing.T) {
	c := CascadesFor(config.Selectors{Card: ".card", Name: []string{".custom-name"}})
	assert.Equal(t, []string{".custom-name"}, c.Name)
	// Untouched fields keep the defaults.
	assert.Equal(t, DefaultCascades().Price, c.Price)
}

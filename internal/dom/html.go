package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLElement adapts a parsed HTML fragment to the Element interface. It
// backs extraction tests and offline fixtures; live pages use the playwright
// implementation in internal/browser.
type HTMLElement struct {
	sel *goquery.Selection
}

func NewHTMLElement(sel *goquery.Selection) *HTMLElement {
	return &HTMLElement{sel: sel}
}

// ParseHTML parses a full HTML document and returns its root element.
func ParseHTML(html string) (*HTMLElement, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &HTMLElement{sel: doc.Selection}, nil
}

func (e *HTMLElement) Text() (string, bool) {
	if e.sel.Length() == 0 {
		return "", false
	}
	return e.sel.Text(), true
}

func (e *HTMLElement) Attr(name string) (string, bool) {
	if e.sel.Length() == 0 {
		return "", false
	}
	return e.sel.Attr(name)
}

func (e *HTMLElement) QueryAll(selector string) []Element {
	// goquery swallows invalid selectors by matching nothing, which is
	// exactly the cascade contract: a bad candidate is just a miss.
	matches := e.sel.Find(selector)
	out := make([]Element, 0, matches.Length())
	matches.Each(func(_ int, s *goquery.Selection) {
		out = append(out, &HTMLElement{sel: s})
	})
	return out
}

func (e *HTMLElement) Screenshot(string) error {
	return ErrUnsupported
}

package dom

import (
	"errors"
	"time"
)

var (
	// ErrNoMatch means the lookup ran fine but nothing matched, or the match
	// was not actionable (hidden/disabled control). Expected during cascades
	// and pagination; never a hard failure.
	ErrNoMatch = errors.New("no matching element")

	// ErrUnsupported is returned by element implementations that cannot
	// perform an operation (e.g. screenshots of parsed fixtures).
	ErrUnsupported = errors.New("operation not supported")
)

// Element is one rendered DOM node, typically a product card or one of its
// descendants. Lookups report found/not-found explicitly: ok is false when
// the element is gone or the engine could not read it.
type Element interface {
	// Text returns the element's inner text.
	Text() (text string, ok bool)
	// Attr returns the value of the named attribute.
	Attr(name string) (value string, ok bool)
	// QueryAll returns all descendants matching the selector. An invalid or
	// non-matching selector yields an empty slice, not an error.
	QueryAll(selector string) []Element
	// Screenshot writes a PNG of the element to path.
	Screenshot(path string) error
}

// Page drives one live browser tab. All calls are blocking; the scraper
// uses a single page serially and never concurrently.
type Page interface {
	// Navigate loads the URL and waits for the DOM to be ready.
	Navigate(url string) error
	// QueryAll returns all elements on the page matching the selector.
	QueryAll(selector string) []Element
	// ClickVisible scrolls the first visible, enabled match into view and
	// activates it. Returns ErrNoMatch when no such control exists.
	ClickVisible(selector string, timeout time.Duration) error
	// ScrollToBottom triggers one scroll-to-bottom step.
	ScrollToBottom() error
	// WaitIdle waits until the page reaches network idle, bounded by timeout.
	WaitIdle(timeout time.Duration) error
}

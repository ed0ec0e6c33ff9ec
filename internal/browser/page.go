package browser

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/maltedev/material-scraper/internal/dom"
)

// Fast lookups against cards that may have detached; keeps a missing
// selector from eating the full page timeout.
const lookupTimeoutMS = 1500

// Page adapts a playwright tab to the dom.Page capability.
type Page struct {
	page   playwright.Page
	logger *slog.Logger
}

var _ dom.Page = (*Page)(nil)

func (p *Page) Navigate(url string) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	// Let client-side rendering settle before the first extraction.
	p.page.WaitForTimeout(800)
	return nil
}

func (p *Page) QueryAll(selector string) []dom.Element {
	loc := p.page.Locator(selector)
	count, err := loc.Count()
	if err != nil {
		p.logger.Debug("locator count failed", "selector", selector, "error", err)
		return nil
	}
	elements := make([]dom.Element, 0, count)
	for i := 0; i < count; i++ {
		elements = append(elements, &element{loc: loc.Nth(i)})
	}
	return elements
}

func (p *Page) ClickVisible(selector string, timeout time.Duration) error {
	loc := p.page.Locator(selector).First()

	count, err := loc.Count()
	if err != nil {
		return fmt.Errorf("failed to locate %q: %w", selector, err)
	}
	if count == 0 {
		return dom.ErrNoMatch
	}

	visible, err := loc.IsVisible()
	if err != nil || !visible {
		return dom.ErrNoMatch
	}
	enabled, err := loc.IsEnabled(playwright.LocatorIsEnabledOptions{
		Timeout: playwright.Float(lookupTimeoutMS),
	})
	if err != nil || !enabled {
		return dom.ErrNoMatch
	}

	if err := loc.ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("failed to scroll %q into view: %w", selector, err)
	}
	if err := loc.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("failed to click %q: %w", selector, err)
	}
	return nil
}

func (p *Page) ScrollToBottom() error {
	return p.page.Mouse().Wheel(0, 4000)
}

func (p *Page) WaitIdle(timeout time.Duration) error {
	return p.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

// element adapts a playwright locator to the dom.Element capability.
type element struct {
	loc playwright.Locator
}

var _ dom.Element = (*element)(nil)

func (e *element) Text() (string, bool) {
	text, err := e.loc.InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(lookupTimeoutMS),
	})
	if err != nil {
		return "", false
	}
	return text, true
}

func (e *element) Attr(name string) (string, bool) {
	value, err := e.loc.GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(lookupTimeoutMS),
	})
	if err != nil {
		return "", false
	}
	return value, true
}

func (e *element) QueryAll(selector string) []dom.Element {
	loc := e.loc.Locator(selector)
	count, err := loc.Count()
	if err != nil {
		return nil
	}
	elements := make([]dom.Element, 0, count)
	for i := 0; i < count; i++ {
		elements = append(elements, &element{loc: loc.Nth(i)})
	}
	return elements
}

func (e *element) Screenshot(path string) error {
	_, err := e.loc.Screenshot(playwright.LocatorScreenshotOptions{
		Path: playwright.String(path),
	})
	if err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}
	return nil
}

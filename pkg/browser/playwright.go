package browser

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Page adapts a playwright page to Driver.
type Page struct {
	page playwright.Page
	bctx playwright.BrowserContext // owned context, closed with the page when set
}

// NewPage wraps a playwright page.
func NewPage(p playwright.Page) *Page {
	return &Page{page: p}
}

// Goto navigates to url.
func (p *Page) Goto(url string, opts GotoOptions) error {
	o := playwright.PageGotoOptions{}
	if opts.Timeout > 0 {
		o.Timeout = msec(opts.Timeout)
	}
	if opts.NetworkIdle {
		o.WaitUntil = playwright.WaitUntilStateNetworkidle
	}
	if _, err := p.page.Goto(url, o); err != nil {
		return fmt.Errorf("goto %s: %w", url, err)
	}
	return nil
}

// Locate returns the first element matching selector.
func (p *Page) Locate(selector string) Element {
	return &locator{loc: p.page.Locator(selector).First(), desc: selector}
}

// LocateRole returns the first element with the given ARIA role and accessible name.
func (p *Page) LocateRole(role, name string) Element {
	loc := p.page.GetByRole(playwright.AriaRole(role), playwright.PageGetByRoleOptions{Name: name})
	return &locator{loc: loc.First(), desc: fmt.Sprintf("role=%s[name=%q]", role, name)}
}

// LocateLabel returns the first element with the given aria label.
func (p *Page) LocateLabel(label string) Element {
	return &locator{loc: p.page.GetByLabel(label).First(), desc: fmt.Sprintf("label=%q", label)}
}

// Keyboard returns the page keyboard.
func (p *Page) Keyboard() Keyboard {
	return keyboard{kb: p.page.Keyboard()}
}

// WaitForURL waits until the page url matches pattern.
func (p *Page) WaitForURL(pattern *regexp.Regexp, timeout time.Duration) error {
	if err := p.page.WaitForURL(pattern, playwright.PageWaitForURLOptions{Timeout: msec(timeout)}); err != nil {
		return fmt.Errorf("wait for url %s: %w", pattern, err)
	}
	return nil
}

// Screenshot writes a full page screenshot to path.
func (p *Page) Screenshot(path string) error {
	if _, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	return nil
}

// Close closes the page and the context it owns.
func (p *Page) Close() error {
	var errs []error
	if err := p.page.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close page: %w", err))
	}
	if p.bctx != nil {
		if err := p.bctx.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser context: %w", err))
		}
	}
	return errors.Join(errs...)
}

type keyboard struct {
	kb playwright.Keyboard
}

func (k keyboard) Type(text string) error {
	if err := k.kb.Type(text); err != nil {
		return fmt.Errorf("keyboard type: %w", err)
	}
	return nil
}

func (k keyboard) Press(key string) error {
	if err := k.kb.Press(key); err != nil {
		return fmt.Errorf("keyboard press %s: %w", key, err)
	}
	return nil
}

// locator adapts a playwright locator to Element.
type locator struct {
	loc  playwright.Locator
	desc string
}

func (l *locator) Click(timeout time.Duration) error {
	o := playwright.LocatorClickOptions{}
	if timeout > 0 {
		o.Timeout = msec(timeout)
	}
	if err := l.loc.Click(o); err != nil {
		return fmt.Errorf("click %s: %w", l.desc, err)
	}
	return nil
}

func (l *locator) Fill(text string) error {
	if err := l.loc.Fill(text); err != nil {
		return fmt.Errorf("fill %s: %w", l.desc, err)
	}
	return nil
}

func (l *locator) Type(text string) error {
	if err := l.loc.PressSequentially(text); err != nil {
		return fmt.Errorf("type into %s: %w", l.desc, err)
	}
	return nil
}

func (l *locator) Press(key string) error {
	if err := l.loc.Press(key); err != nil {
		return fmt.Errorf("press %s on %s: %w", key, l.desc, err)
	}
	return nil
}

func (l *locator) Focus() error {
	if err := l.loc.Focus(); err != nil {
		return fmt.Errorf("focus %s: %w", l.desc, err)
	}
	return nil
}

func (l *locator) WaitFor(state State, timeout time.Duration) error {
	o := playwright.LocatorWaitForOptions{State: waitState(state)}
	if timeout > 0 {
		o.Timeout = msec(timeout)
	}
	if err := l.loc.WaitFor(o); err != nil {
		return fmt.Errorf("wait for %s to be %s: %w", l.desc, state, err)
	}
	return nil
}

func (l *locator) IsVisible() (bool, error) {
	visible, err := l.loc.IsVisible()
	if err != nil {
		return false, fmt.Errorf("check visibility of %s: %w", l.desc, err)
	}
	return visible, nil
}

func (l *locator) TextContent() (string, error) {
	text, err := l.loc.TextContent()
	if err != nil {
		return "", fmt.Errorf("read text of %s: %w", l.desc, err)
	}
	return text, nil
}

func (l *locator) Locate(selector string) Element {
	return &locator{loc: l.loc.Locator(selector).First(), desc: l.desc + " >> " + selector}
}

func (l *locator) WithText(re *regexp.Regexp) Element {
	loc := l.loc.Filter(playwright.LocatorFilterOptions{HasText: re})
	return &locator{loc: loc.First(), desc: fmt.Sprintf("%s[text=/%s/]", l.desc, re)}
}

func waitState(s State) *playwright.WaitForSelectorState {
	switch s {
	case StateHidden:
		return playwright.WaitForSelectorStateHidden
	case StateAttached:
		return playwright.WaitForSelectorStateAttached
	case StateDetached:
		return playwright.WaitForSelectorStateDetached
	default:
		return playwright.WaitForSelectorStateVisible
	}
}

func msec(d time.Duration) *float64 {
	return playwright.Float(float64(d / time.Millisecond))
}

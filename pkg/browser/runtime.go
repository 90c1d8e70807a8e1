package browser

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// RuntimeOptions controls how the browser is started.
type RuntimeOptions struct {
	Install  bool    // download driver and browsers before starting
	Headless bool    // run without a visible window
	SlowMo   float64 // delay between actions in ms, applied only when not headless
}

// Runtime owns the playwright driver and a launched chromium.
type Runtime struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// Start brings up playwright and launches chromium.
func Start(opts RuntimeOptions) (*Runtime, error) {
	if opts.Install {
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
			return nil, fmt.Errorf("install playwright: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("run playwright: %w", err)
	}

	launch := playwright.BrowserTypeLaunchOptions{Headless: playwright.Bool(opts.Headless)}
	if !opts.Headless && opts.SlowMo > 0 {
		launch.SlowMo = playwright.Float(opts.SlowMo)
	}
	b, err := pw.Chromium.Launch(launch)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	return &Runtime{pw: pw, browser: b}, nil
}

// NewPage opens a page in a fresh isolated context. Certificate errors are ignored,
// test clusters usually run with self-signed certificates.
// closing the page returned by NewPage also closes its context.
func (r *Runtime) NewPage() (*Page, error) {
	bctx, err := r.browser.NewContext(playwright.BrowserNewContextOptions{
		IgnoreHttpsErrors: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create browser context: %w", err)
	}
	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		return nil, fmt.Errorf("create page: %w", err)
	}
	return &Page{page: page, bctx: bctx}, nil
}

// Close shuts the browser and the driver down.
func (r *Runtime) Close() error {
	var errs []error
	if r.browser != nil {
		if err := r.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
	}
	if r.pw != nil {
		if err := r.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop playwright: %w", err))
		}
	}
	return errors.Join(errs...)
}

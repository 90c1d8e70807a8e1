// Package editor checks the web code editor of a dev workspace.
package editor

import (
	"fmt"
	"regexp"
	"time"

	"github.com/umputun/wtcheck/pkg/browser"
)

// TrustButton is the workspace trust prompt shown when the editor opens a project.
const TrustButton = "Yes, I trust the authors"

// workbench parts that must be visible once the editor has loaded.
var workbenchParts = []string{".monaco-workbench", ".activitybar", ".statusbar"}

// Editor wraps a page showing the web editor.
type Editor struct {
	driver browser.Driver
}

// Open navigates to the workspace url, waits for the network to settle and accepts the trust prompt.
func Open(d browser.Driver, url string, timeout time.Duration) (*Editor, error) {
	if err := d.Goto(url, browser.GotoOptions{Timeout: timeout, NetworkIdle: true}); err != nil {
		return nil, fmt.Errorf("open workspace: %w", err)
	}
	trust := d.LocateRole("button", TrustButton)
	if err := trust.WaitFor(browser.StateVisible, timeout); err != nil {
		return nil, fmt.Errorf("wait for trust prompt: %w", err)
	}
	if err := trust.Click(timeout); err != nil {
		return nil, fmt.Errorf("accept trust prompt: %w", err)
	}
	return &Editor{driver: d}, nil
}

// WaitWorkbench waits for the workbench, the activity bar and the status bar.
func (e *Editor) WaitWorkbench(timeout time.Duration) error {
	for _, sel := range workbenchParts {
		if err := e.driver.Locate(sel).WaitFor(browser.StateVisible, timeout); err != nil {
			return fmt.Errorf("editor %s not visible: %w", sel, err)
		}
	}
	return nil
}

// OpenFile clicks the explorer entry labelled with path whose text is exactly name.
func (e *Editor) OpenFile(path, name string, timeout time.Duration) error {
	entry := e.driver.LocateLabel(path).Locate("div").WithText(regexp.MustCompile("^" + regexp.QuoteMeta(name) + "$"))
	if err := entry.WaitFor(browser.StateVisible, timeout); err != nil {
		return fmt.Errorf("find %s in explorer: %w", path, err)
	}
	if err := entry.Click(timeout); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

// OpenMenu clicks the first menu bar entry.
func (e *Editor) OpenMenu(timeout time.Duration) error {
	if err := e.driver.Locate(".menubar-menu-title").Click(timeout); err != nil {
		return fmt.Errorf("open menu: %w", err)
	}
	return nil
}

// Screenshot saves a full page screenshot, used on failures.
func (e *Editor) Screenshot(path string) error {
	return e.driver.Screenshot(path)
}

package editor

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/wtcheck/pkg/browser"
	"github.com/umputun/wtcheck/pkg/browser/mocks"
)

func okElement() *mocks.ElementMock {
	return &mocks.ElementMock{
		WaitForFunc: func(browser.State, time.Duration) error { return nil },
		ClickFunc:   func(time.Duration) error { return nil },
	}
}

func TestOpen(t *testing.T) {
	trust := okElement()
	drv := &mocks.DriverMock{
		GotoFunc:       func(string, browser.GotoOptions) error { return nil },
		LocateRoleFunc: func(string, string) browser.Element { return trust },
	}

	ed, err := Open(drv, "https://ws.example.com/user/web-nodejs-sample/", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, ed)

	gotos := drv.GotoCalls()
	require.Len(t, gotos, 1)
	assert.Equal(t, "https://ws.example.com/user/web-nodejs-sample/", gotos[0].URL)
	assert.True(t, gotos[0].Opts.NetworkIdle)
	assert.Equal(t, time.Minute, gotos[0].Opts.Timeout)

	roles := drv.LocateRoleCalls()
	require.Len(t, roles, 1)
	assert.Equal(t, "button", roles[0].Role)
	assert.Equal(t, TrustButton, roles[0].Name)
	assert.Len(t, trust.ClickCalls(), 1)
}

func TestOpen_NoTrustPrompt(t *testing.T) {
	trust := &mocks.ElementMock{WaitForFunc: func(browser.State, time.Duration) error { return errors.New("timeout") }}
	drv := &mocks.DriverMock{
		GotoFunc:       func(string, browser.GotoOptions) error { return nil },
		LocateRoleFunc: func(string, string) browser.Element { return trust },
	}

	_, err := Open(drv, "https://ws", time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trust prompt")
}

func TestEditor_WaitWorkbench(t *testing.T) {
	var waited []string
	drv := &mocks.DriverMock{LocateFunc: func(selector string) browser.Element {
		return &mocks.ElementMock{WaitForFunc: func(browser.State, time.Duration) error {
			waited = append(waited, selector)
			if selector == ".statusbar" {
				return errors.New("timeout")
			}
			return nil
		}}
	}}
	ed := &Editor{driver: drv}

	err := ed.WaitWorkbench(time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".statusbar")
	assert.Equal(t, []string{".monaco-workbench", ".activitybar", ".statusbar"}, waited)
}

func TestEditor_OpenFile(t *testing.T) {
	entry := okElement()
	var filter *regexp.Regexp
	row := &mocks.ElementMock{WithTextFunc: func(re *regexp.Regexp) browser.Element {
		filter = re
		return entry
	}}
	label := &mocks.ElementMock{LocateFunc: func(string) browser.Element { return row }}
	drv := &mocks.DriverMock{LocateLabelFunc: func(string) browser.Element { return label }}
	ed := &Editor{driver: drv}

	require.NoError(t, ed.OpenFile("/projects/web-nodejs-sample/README.md", "README.md", time.Second))

	assert.Equal(t, "/projects/web-nodejs-sample/README.md", drv.LocateLabelCalls()[0].Label)
	assert.Equal(t, "div", label.LocateCalls()[0].Selector)
	require.NotNil(t, filter)
	assert.True(t, filter.MatchString("README.md"))
	assert.False(t, filter.MatchString("README.mdx"))
	assert.False(t, filter.MatchString("READMEXmd"), "dot is literal")
	assert.Len(t, entry.ClickCalls(), 1)
}

func TestEditor_OpenMenuAndScreenshot(t *testing.T) {
	menu := okElement()
	drv := &mocks.DriverMock{
		LocateFunc:     func(string) browser.Element { return menu },
		ScreenshotFunc: func(string) error { return nil },
	}
	ed := &Editor{driver: drv}

	require.NoError(t, ed.OpenMenu(time.Second))
	assert.Equal(t, ".menubar-menu-title", drv.LocateCalls()[0].Selector)
	assert.Len(t, menu.ClickCalls(), 1)

	require.NoError(t, ed.Screenshot("playwright_logs/editor-failure.png"))
	assert.Equal(t, "playwright_logs/editor-failure.png", drv.ScreenshotCalls()[0].Path)
}

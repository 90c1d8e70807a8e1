// Package browser defines the narrow set of browser capabilities the harness relies on.
// Driver, Element and Keyboard are implemented by the playwright adapter in this package
// and by moq mocks in tests. Locator settings may carry several selectors separated by
// "||", one per UI version; Probe picks whichever shows up first.
package browser

import (
	"regexp"
	"strings"
	"time"
)

//go:generate moq -out mocks/driver.go -pkg mocks -skip-ensure -fmt goimports . Driver
//go:generate moq -out mocks/element.go -pkg mocks -skip-ensure -fmt goimports . Element
//go:generate moq -out mocks/keyboard.go -pkg mocks -skip-ensure -fmt goimports . Keyboard

// State is an element state to wait for.
type State string

// element states understood by WaitFor.
const (
	StateVisible  State = "visible"
	StateHidden   State = "hidden"
	StateAttached State = "attached"
	StateDetached State = "detached"
)

// GotoOptions tune navigation.
type GotoOptions struct {
	Timeout     time.Duration // zero means driver default
	NetworkIdle bool          // wait until there are no network connections for at least 500ms
}

// Driver is a browser page.
type Driver interface {
	Goto(url string, opts GotoOptions) error
	Locate(selector string) Element
	LocateRole(role, name string) Element
	LocateLabel(label string) Element
	Keyboard() Keyboard
	WaitForURL(pattern *regexp.Regexp, timeout time.Duration) error
	Screenshot(path string) error
	Close() error
}

// Element is a lazy element handle, resolved on every action.
// when a selector matches several nodes the first one is used.
type Element interface {
	Click(timeout time.Duration) error
	Fill(text string) error
	Type(text string) error
	Press(key string) error
	Focus() error
	WaitFor(state State, timeout time.Duration) error
	IsVisible() (bool, error)
	TextContent() (string, error)
	Locate(selector string) Element
	WithText(re *regexp.Regexp) Element
}

// Keyboard sends key events to the focused element.
type Keyboard interface {
	Type(text string) error
	Press(key string) error
}

// Candidates splits a locator setting into its alternative selectors.
// blank alternatives are dropped.
func Candidates(setting string) []string {
	var res []string
	for _, s := range strings.Split(setting, "||") {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return res
}

// LocateAny returns elements for every alternative of a locator setting, in order.
func LocateAny(d Driver, setting string) []Element {
	sels := Candidates(setting)
	res := make([]Element, 0, len(sels))
	for _, s := range sels {
		res = append(res, d.Locate(s))
	}
	return res
}

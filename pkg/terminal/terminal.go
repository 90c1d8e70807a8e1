// Package terminal drives the web console terminal.
// commands are typed into the browser with their output appended to a sentinel file inside
// the terminal pod; waits read that file back out-of-band (see pkg/oc) and poll for the
// expected text. the session also tracks the connection lifecycle: a terminal may close
// after configuration changes and must be restarted before it accepts input again.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/wtcheck/pkg/browser"
	"github.com/umputun/wtcheck/pkg/config"
	"github.com/umputun/wtcheck/pkg/poll"
)

//go:generate moq -out mocks/output_fetcher.go -pkg mocks -skip-ensure -fmt goimports . OutputFetcher

// State is the lifecycle state of a session.
type State string

// session states.
const (
	StateInitializing State = "initializing"
	StateReady        State = "ready"
	StateClosed       State = "closed"
	StateRestarting   State = "restarting"
)

// OutputFetcher returns recent terminal output, "" when nothing could be read.
type OutputFetcher interface {
	FetchRecentOutput(ctx context.Context) string
}

// Resetter is implemented by fetchers able to clear previously captured output.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Logger is the logging dependency, nil disables logging.
type Logger interface {
	Print(format string, args ...any)
}

// Locators holds the locator settings used by the session, each may list alternatives separated by "||".
type Locators struct {
	TerminalIcon  string
	StartButton   string
	ProjectInput  string
	TerminalInput string
	TerminalRows  string
	RestartButton string
	ClosedMessage string
}

// Options configures a session.
type Options struct {
	Locators     Locators
	SentinelFile string        // file commands redirect their output to
	Project      string        // project to start the terminal in, empty keeps the console default
	PollInterval time.Duration // output poll interval, default 500ms
	ShortTimeout time.Duration // waits for secondary controls, default 10s
	SetupTimeout time.Duration // Open: time for the terminal to start, default 60s
	Logger       Logger
}

// OptionsFromConfig maps the loaded settings to session options.
func OptionsFromConfig(cfg *config.Config, project string, log Logger) Options {
	return Options{
		Locators: Locators{
			TerminalIcon:  cfg.Locators.TerminalIcon,
			StartButton:   cfg.Locators.StartButton,
			ProjectInput:  cfg.Locators.ProjectInput,
			TerminalInput: cfg.Locators.TerminalInput,
			TerminalRows:  cfg.Locators.TerminalRows,
			RestartButton: cfg.Locators.RestartButton,
			ClosedMessage: cfg.Locators.ClosedMessage,
		},
		SentinelFile: cfg.SentinelFile,
		Project:      project,
		PollInterval: cfg.PollInterval(),
		ShortTimeout: cfg.ShortTimeout(),
		SetupTimeout: cfg.LongTimeout(),
		Logger:       log,
	}
}

// Session is one terminal bound to a browser page. Operations are meant to be called sequentially;
// the state is guarded so misuse from several goroutines cannot corrupt it.
type Session struct {
	driver  browser.Driver
	fetcher OutputFetcher
	opts    Options

	mu       sync.Mutex
	state    State
	inFlight bool   // restart running
	inputSel string // terminal input selector resolved by Open
	onChange func(old, cur State)
}

// New makes a session on top of an already displayed terminal. Most callers want Open.
func New(driver browser.Driver, fetcher OutputFetcher, opts Options) *Session {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 500 * time.Millisecond
	}
	if opts.ShortTimeout <= 0 {
		opts.ShortTimeout = 10 * time.Second
	}
	if opts.SetupTimeout <= 0 {
		opts.SetupTimeout = 60 * time.Second
	}
	s := &Session{driver: driver, fetcher: fetcher, opts: opts, state: StateInitializing}
	if c := browser.Candidates(opts.Locators.TerminalInput); len(c) > 0 {
		s.inputSel = c[0]
	}
	return s
}

// Open clicks the terminal icon in the console masthead and waits for the terminal to accept input.
// when the console shows the start form, the project is filled in (if set) and the form submitted.
// a terminal left running by an earlier session is reused as is.
func Open(ctx context.Context, driver browser.Driver, fetcher OutputFetcher, opts Options) (*Session, error) {
	s := New(driver, fetcher, opts)
	if err := s.open(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) open(ctx context.Context) error {
	s.setState(StateInitializing)

	icon, err := browser.ProbeSetting(s.driver, s.opts.Locators.TerminalIcon, s.opts.SetupTimeout)
	if err != nil {
		return fmt.Errorf("find terminal icon: %w", err)
	}
	if err := icon.Click(s.opts.ShortTimeout); err != nil {
		return fmt.Errorf("open terminal drawer: %w", err)
	}

	starts := browser.Candidates(s.opts.Locators.StartButton)
	inputs := browser.Candidates(s.opts.Locators.TerminalInput)
	if len(inputs) == 0 {
		return errors.New("no terminal input locator configured")
	}
	elems := make([]browser.Element, 0, len(starts)+len(inputs))
	for _, sel := range starts {
		elems = append(elems, s.driver.Locate(sel))
	}
	for _, sel := range inputs {
		elems = append(elems, s.driver.Locate(sel))
	}

	idx, err := browser.Probe(s.opts.SetupTimeout, elems...)
	if err != nil {
		return fmt.Errorf("wait for terminal start form or input: %w", err)
	}

	if idx >= len(starts) {
		s.logf("terminal already running, reusing it")
		s.markReady(inputs[idx-len(starts)])
		return nil
	}

	if s.opts.Project != "" {
		if err := s.SetProject(s.opts.Project); err != nil {
			return err
		}
	}
	if err := elems[idx].Click(s.opts.ShortTimeout); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	input, err := s.waitInput(ctx, inputs, s.opts.SetupTimeout)
	if err != nil {
		return fmt.Errorf("wait for terminal input: %w", err)
	}
	s.markReady(input)
	s.logf("terminal started")
	return nil
}

// waitInput polls until one of the input selectors is visible and returns it.
func (s *Session) waitInput(ctx context.Context, selectors []string, timeout time.Duration) (string, error) {
	var found string
	err := poll.Until(ctx, s.opts.PollInterval, timeout, func(context.Context) (bool, error) {
		var lastErr error
		for _, sel := range selectors {
			visible, err := s.driver.Locate(sel).IsVisible()
			if err != nil {
				lastErr = err
				continue
			}
			if visible {
				found = sel
				return true, nil
			}
		}
		return false, lastErr
	})
	if err != nil {
		return "", err
	}
	return found, nil
}

func (s *Session) markReady(inputSel string) {
	s.mu.Lock()
	s.inputSel = inputSel
	s.mu.Unlock()
	s.setState(StateReady)
}

// EnsureInitialized proves the output pipeline works end to end: it echoes a unique marker and waits
// until the fetcher returns it. fetchers able to reset the sentinel file are reset first.
func (s *Session) EnsureInitialized(ctx context.Context, timeout time.Duration) error {
	if r, ok := s.fetcher.(Resetter); ok {
		if err := r.Reset(ctx); err != nil {
			s.logf("[WARN] reset terminal output: %v", err)
		}
	}

	marker := "wtcheck-ready-" + uuid.NewString()
	if err := s.TypeAndEnter("echo " + marker); err != nil {
		return fmt.Errorf("send init marker: %w", err)
	}
	if err := s.WaitForOutputContains(ctx, marker, timeout); err != nil {
		return fmt.Errorf("terminal output pipeline: %w", err)
	}
	return nil
}

// SetProject fills the project field of the terminal start form.
func (s *Session) SetProject(name string) error {
	el, err := browser.ProbeSetting(s.driver, s.opts.Locators.ProjectInput, s.opts.ShortTimeout)
	if err != nil {
		return fmt.Errorf("find project input: %w", err)
	}
	if err := el.Fill(name); err != nil {
		return fmt.Errorf("set project %s: %w", name, err)
	}
	return nil
}

// ScreenText returns the text currently rendered in the terminal, useful for failure reports.
// xterm renders only the visible rows so this is not a replacement for fetched output.
func (s *Session) ScreenText() (string, error) {
	sels := browser.Candidates(s.opts.Locators.TerminalRows)
	if len(sels) == 0 {
		return "", errors.New("no terminal rows locator configured")
	}
	return s.driver.Locate(sels[0]).TextContent()
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnStateChange registers a callback fired on every state change.
// only one callback is supported; subsequent calls replace the previous one.
func (s *Session) OnStateChange(fn func(old, cur State)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Close closes the browser page the terminal lives in.
func (s *Session) Close() error {
	if err := s.driver.Close(); err != nil {
		return fmt.Errorf("close terminal page: %w", err)
	}
	return nil
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	cb := s.setStateLocked(st)
	s.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// setStateLocked updates the state with mu held and returns the notification to fire after unlock.
func (s *Session) setStateLocked(st State) func() {
	old := s.state
	s.state = st
	if old == st || s.onChange == nil {
		return nil
	}
	fn := s.onChange
	return func() { fn(old, st) }
}

func (s *Session) input() browser.Element {
	s.mu.Lock()
	sel := s.inputSel
	s.mu.Unlock()
	return s.driver.Locate(sel)
}

func (s *Session) logf(format string, args ...any) {
	if s.opts.Logger != nil {
		s.opts.Logger.Print(format, args...)
	}
}

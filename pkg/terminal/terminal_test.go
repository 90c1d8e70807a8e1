package terminal

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/wtcheck/pkg/browser"
	bmocks "github.com/umputun/wtcheck/pkg/browser/mocks"
	"github.com/umputun/wtcheck/pkg/config"
	"github.com/umputun/wtcheck/pkg/terminal/mocks"
)

const testSentinel = "/tmp/wt.log"

var testLocators = Locators{
	TerminalIcon:  "#icon",
	StartButton:   "#start-v1 || #start-v2",
	ProjectInput:  "#project",
	TerminalInput: "#input",
	TerminalRows:  "#rows",
	RestartButton: "#restart",
	ClosedMessage: "#closed",
}

func testOptions() Options {
	return Options{
		Locators:     testLocators,
		SentinelFile: testSentinel,
		PollInterval: 20 * time.Millisecond,
		ShortTimeout: 200 * time.Millisecond,
		SetupTimeout: 500 * time.Millisecond,
	}
}

// uiElement is a mocked element with switchable visibility.
type uiElement struct {
	mock    *bmocks.ElementMock
	visible atomic.Bool
	onClick func()
}

func newUIElement(visible bool) *uiElement {
	e := &uiElement{}
	e.visible.Store(visible)
	e.mock = &bmocks.ElementMock{
		WaitForFunc: func(_ browser.State, timeout time.Duration) error {
			deadline := time.Now().Add(timeout)
			for time.Now().Before(deadline) {
				if e.visible.Load() {
					return nil
				}
				time.Sleep(5 * time.Millisecond)
			}
			return errors.New("timeout exceeded")
		},
		IsVisibleFunc: func() (bool, error) { return e.visible.Load(), nil },
		ClickFunc: func(time.Duration) error {
			if e.onClick != nil {
				e.onClick()
			}
			return nil
		},
		FillFunc:  func(string) error { return nil },
		TypeFunc:  func(string) error { return nil },
		PressFunc: func(string) error { return nil },
	}
	return e
}

// newDriver returns a page where unknown selectors never become visible.
func newDriver(elems map[string]*uiElement) *bmocks.DriverMock {
	hidden := newUIElement(false)
	return &bmocks.DriverMock{
		LocateFunc: func(selector string) browser.Element {
			if e, ok := elems[selector]; ok {
				return e.mock
			}
			return hidden.mock
		},
		CloseFunc: func() error { return nil },
	}
}

// fetcherSeq returns outputs in order, repeating the last one.
func fetcherSeq(outputs ...string) *mocks.OutputFetcherMock {
	var n atomic.Int32
	return &mocks.OutputFetcherMock{FetchRecentOutputFunc: func(context.Context) string {
		i := int(n.Add(1)) - 1
		if i >= len(outputs) {
			i = len(outputs) - 1
		}
		return outputs[i]
	}}
}

// echoFetcher captures everything echoed into the terminal.
type echoFetcher struct {
	mu     sync.Mutex
	out    []string
	resets int
}

func (f *echoFetcher) FetchRecentOutput(context.Context) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return strings.Join(f.out, "\n")
}

func (f *echoFetcher) Reset(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.out = nil
	f.resets++
	return nil
}

func (f *echoFetcher) typed(text string) error {
	cmd, _, _ := strings.Cut(text, " >> ")
	if arg, ok := strings.CutPrefix(cmd, "echo "); ok {
		f.mu.Lock()
		f.out = append(f.out, arg)
		f.mu.Unlock()
	}
	return nil
}

func readySession(t *testing.T, elems map[string]*uiElement, fetcher OutputFetcher) *Session {
	t.Helper()
	s := New(newDriver(elems), fetcher, testOptions())
	s.setState(StateReady)
	return s
}

func TestRedirect(t *testing.T) {
	assert.Equal(t, "oc whoami >> /tmp/wt.log 2>&1", Redirect("oc whoami", testSentinel))
	assert.Equal(t, "echo $SHELL >> /tmp/x 2>&1", Redirect("echo $SHELL", "/tmp/x"))
}

func TestSession_TypeAndEnter(t *testing.T) {
	input := newUIElement(true)
	s := readySession(t, map[string]*uiElement{"#input": input}, fetcherSeq(""))

	require.NoError(t, s.TypeAndEnter("oc whoami"))

	typed := input.mock.TypeCalls()
	require.Len(t, typed, 1)
	assert.Equal(t, "oc whoami >> /tmp/wt.log 2>&1", typed[0].Text)
	pressed := input.mock.PressCalls()
	require.Len(t, pressed, 1)
	assert.Equal(t, "Enter", pressed[0].Key)
}

func TestSession_ProvideInput(t *testing.T) {
	input := newUIElement(true)
	s := readySession(t, map[string]*uiElement{"#input": input}, fetcherSeq(""))

	require.NoError(t, s.ProvideInput("200Mi"))
	require.NoError(t, s.ProvideInput("y"))

	typed := input.mock.TypeCalls()
	require.Len(t, typed, 2)
	assert.Equal(t, "200Mi", typed[0].Text)
	assert.Equal(t, "y", typed[1].Text)
	assert.Len(t, input.mock.PressCalls(), 2)
}

func TestSession_TypeAndEnter_DriverError(t *testing.T) {
	input := newUIElement(true)
	input.mock.TypeFunc = func(string) error { return errors.New("element detached") }
	s := readySession(t, map[string]*uiElement{"#input": input}, fetcherSeq(""))

	err := s.TypeAndEnter("help")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element detached")
	assert.Empty(t, input.mock.PressCalls(), "enter is not pressed after a failed type")
}

func TestSession_WaitForOutputContains(t *testing.T) {
	t.Run("match after a few polls", func(t *testing.T) {
		fetcher := fetcherSeq("", "", "NAME  READY  STATUS\nwt-pod 1/1 Running")
		s := readySession(t, nil, fetcher)

		require.NoError(t, s.WaitForOutputContains(context.Background(), "NAME", time.Second))
		assert.Len(t, fetcher.FetchRecentOutputCalls(), 3)
	})

	t.Run("first fetch is immediate", func(t *testing.T) {
		fetcher := fetcherSeq("kube:admin")
		opts := testOptions()
		opts.PollInterval = time.Hour
		s := New(newDriver(nil), fetcher, opts)

		start := time.Now()
		require.NoError(t, s.WaitForOutputContains(context.Background(), "kube:admin", time.Second))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("timeout reports last output", func(t *testing.T) {
		fetcher := fetcherSeq("", "booting", "still booting")
		s := readySession(t, nil, fetcher)

		start := time.Now()
		err := s.WaitForOutputContains(context.Background(), "/usr/local/bin/wtoctl", 300*time.Millisecond)
		require.ErrorIs(t, err, ErrTimeout)
		assert.GreaterOrEqual(t, time.Since(start), 300*time.Millisecond)

		var te *TimeoutError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, "/usr/local/bin/wtoctl", te.Expected)
		assert.Equal(t, "still booting", te.LastOutput)
		assert.Equal(t, 300*time.Millisecond, te.Timeout)
		assert.Contains(t, err.Error(), "still booting")
	})

	t.Run("fetch cut by the deadline keeps previous output", func(t *testing.T) {
		fetcher := &mocks.OutputFetcherMock{FetchRecentOutputFunc: func(ctx context.Context) string {
			select {
			case <-time.After(150 * time.Millisecond):
				return "sh: wtoctl: command not found"
			case <-ctx.Done():
				return ""
			}
		}}
		s := readySession(t, nil, fetcher)

		err := s.WaitForOutputContains(context.Background(), "/usr/local/bin/wtoctl", 400*time.Millisecond)
		var te *TimeoutError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, "sh: wtoctl: command not found", te.LastOutput)
		assert.GreaterOrEqual(t, len(fetcher.FetchRecentOutputCalls()), 2)
	})

	t.Run("empty output is not a match", func(t *testing.T) {
		s := readySession(t, nil, fetcherSeq(""))
		err := s.WaitForOutputContains(context.Background(), "zsh", 100*time.Millisecond)
		var te *TimeoutError
		require.ErrorAs(t, err, &te)
		assert.Empty(t, te.LastOutput)
		assert.Contains(t, err.Error(), "<empty>")
	})

	t.Run("parent context canceled", func(t *testing.T) {
		s := readySession(t, nil, fetcherSeq(""))
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(50*time.Millisecond, cancel)

		err := s.WaitForOutputContains(ctx, "zsh", 5*time.Second)
		require.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, ErrTimeout)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		s := readySession(t, nil, fetcherSeq("x"))
		require.Error(t, s.WaitForOutputContains(context.Background(), "", time.Second))
		require.Error(t, s.WaitForOutputContains(context.Background(), "x", 0))
	})
}

func TestSession_WaitForOutputContains_FullTimeout(t *testing.T) {
	if testing.Short() {
		t.Skip("takes 5s")
	}
	s := readySession(t, nil, fetcherSeq(""))
	s.opts.PollInterval = 500 * time.Millisecond

	start := time.Now()
	err := s.WaitForOutputContains(context.Background(), "kubeadmin", 5*time.Second)
	elapsed := time.Since(start)

	require.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, elapsed, 5*time.Second, "not earlier than the timeout")
	assert.Less(t, elapsed, 6*time.Second)
}

func TestSession_Output(t *testing.T) {
	s := readySession(t, nil, fetcherSeq("Installed tools:\nkubectl\njq"))
	assert.Equal(t, "Installed tools:\nkubectl\njq", s.Output(context.Background()))
}

func TestSession_WaitForClosed(t *testing.T) {
	t.Run("closed notice shows up", func(t *testing.T) {
		closed, restart := newUIElement(false), newUIElement(true)
		s := readySession(t, map[string]*uiElement{"#closed": closed, "#restart": restart}, fetcherSeq(""))
		time.AfterFunc(50*time.Millisecond, func() { closed.visible.Store(true) })

		assert.True(t, s.WaitForClosed(time.Second))
		assert.Equal(t, StateClosed, s.State())
	})

	t.Run("closed without restart control", func(t *testing.T) {
		s := readySession(t, map[string]*uiElement{"#closed": newUIElement(true)}, fetcherSeq(""))
		assert.True(t, s.WaitForClosed(time.Second))
		assert.Equal(t, StateClosed, s.State())
	})

	t.Run("stays open", func(t *testing.T) {
		s := readySession(t, nil, fetcherSeq(""))
		start := time.Now()
		assert.False(t, s.WaitForClosed(150*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
		assert.Equal(t, StateReady, s.State())
	})
}

func TestSession_Restart(t *testing.T) {
	t.Run("full cycle", func(t *testing.T) {
		closed, restart, input := newUIElement(true), newUIElement(true), newUIElement(false)
		restart.onClick = func() {
			closed.visible.Store(false)
			time.AfterFunc(60*time.Millisecond, func() { input.visible.Store(true) })
		}
		s := readySession(t, map[string]*uiElement{"#closed": closed, "#restart": restart, "#input": input},
			fetcherSeq(""))

		var mu sync.Mutex
		var transitions []string
		s.OnStateChange(func(old, cur State) {
			mu.Lock()
			transitions = append(transitions, string(old)+">"+string(cur))
			mu.Unlock()
		})

		require.True(t, s.WaitForClosed(time.Second))
		require.NoError(t, s.Restart(context.Background(), time.Second))
		assert.Equal(t, StateReady, s.State())
		assert.Len(t, restart.mock.ClickCalls(), 1)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []string{"ready>closed", "closed>restarting", "restarting>ready"}, transitions)
	})

	t.Run("not closed", func(t *testing.T) {
		restart := newUIElement(true)
		s := readySession(t, map[string]*uiElement{"#restart": restart}, fetcherSeq(""))

		err := s.Restart(context.Background(), time.Second)
		require.ErrorIs(t, err, ErrNotClosed)
		assert.Contains(t, err.Error(), "ready")
		assert.Empty(t, restart.mock.ClickCalls())
		assert.Equal(t, StateReady, s.State())
	})

	t.Run("input never comes back", func(t *testing.T) {
		s := readySession(t, map[string]*uiElement{"#closed": newUIElement(true), "#restart": newUIElement(true)},
			fetcherSeq(""))
		require.True(t, s.WaitForClosed(time.Second))

		err := s.Restart(context.Background(), 200*time.Millisecond)
		require.ErrorIs(t, err, ErrRestartTimeout)
		var rte *RestartTimeoutError
		require.ErrorAs(t, err, &rte)
		assert.Equal(t, 200*time.Millisecond, rte.Timeout)
		assert.Equal(t, StateRestarting, s.State())

		require.ErrorIs(t, s.Restart(context.Background(), 200*time.Millisecond), ErrNotClosed)

		require.True(t, s.WaitForClosed(time.Second), "seen closed again")
		assert.Equal(t, StateClosed, s.State())
	})

	t.Run("overlapping restart", func(t *testing.T) {
		s := readySession(t, map[string]*uiElement{"#closed": newUIElement(true), "#restart": newUIElement(true)},
			fetcherSeq(""))
		require.True(t, s.WaitForClosed(time.Second))

		done := make(chan error, 1)
		go func() { done <- s.Restart(context.Background(), 500*time.Millisecond) }()
		require.Eventually(t, func() bool { return s.State() == StateRestarting }, time.Second, 5*time.Millisecond)

		require.ErrorIs(t, s.Restart(context.Background(), time.Second), ErrRestartInProgress)
		assert.True(t, s.WaitForClosed(time.Second))
		assert.Equal(t, StateRestarting, s.State(), "closed notice does not interrupt a running restart")

		require.ErrorIs(t, <-done, ErrRestartTimeout)
	})
}

func TestOpen(t *testing.T) {
	t.Run("start form", func(t *testing.T) {
		icon, start, project, input := newUIElement(true), newUIElement(false), newUIElement(true), newUIElement(false)
		icon.onClick = func() { start.visible.Store(true) }
		start.onClick = func() { time.AfterFunc(50*time.Millisecond, func() { input.visible.Store(true) }) }
		drv := newDriver(map[string]*uiElement{"#icon": icon, "#start-v2": start, "#project": project, "#input": input})

		opts := testOptions()
		opts.Project = "openshift-terminal"
		s, err := Open(context.Background(), drv, fetcherSeq(""), opts)
		require.NoError(t, err)

		assert.Equal(t, StateReady, s.State())
		assert.Len(t, icon.mock.ClickCalls(), 1)
		assert.Len(t, start.mock.ClickCalls(), 1)
		fills := project.mock.FillCalls()
		require.Len(t, fills, 1)
		assert.Equal(t, "openshift-terminal", fills[0].Text)
	})

	t.Run("terminal already running", func(t *testing.T) {
		icon, start, input := newUIElement(true), newUIElement(false), newUIElement(true)
		drv := newDriver(map[string]*uiElement{"#icon": icon, "#start-v1": start, "#input": input})

		s, err := Open(context.Background(), drv, fetcherSeq(""), testOptions())
		require.NoError(t, err)
		assert.Equal(t, StateReady, s.State())
		assert.Empty(t, start.mock.ClickCalls())
	})

	t.Run("no terminal icon", func(t *testing.T) {
		_, err := Open(context.Background(), newDriver(nil), fetcherSeq(""), testOptions())
		require.ErrorIs(t, err, browser.ErrNoCandidate)
		assert.Contains(t, err.Error(), "find terminal icon")
	})

	t.Run("terminal never starts", func(t *testing.T) {
		icon, start := newUIElement(true), newUIElement(true)
		drv := newDriver(map[string]*uiElement{"#icon": icon, "#start-v1": start})

		_, err := Open(context.Background(), drv, fetcherSeq(""), testOptions())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wait for terminal input")
	})
}

func TestSession_EnsureInitialized(t *testing.T) {
	fetcher := &echoFetcher{out: []string{"stale output"}}
	input := newUIElement(true)
	input.mock.TypeFunc = fetcher.typed
	s := readySession(t, map[string]*uiElement{"#input": input}, fetcher)

	require.NoError(t, s.EnsureInitialized(context.Background(), time.Second))
	assert.Equal(t, 1, fetcher.resets)

	typed := input.mock.TypeCalls()
	require.Len(t, typed, 1)
	assert.True(t, strings.HasPrefix(typed[0].Text, "echo wtcheck-ready-"))
	assert.True(t, strings.HasSuffix(typed[0].Text, " >> /tmp/wt.log 2>&1"))
	assert.NotContains(t, fetcher.FetchRecentOutput(context.Background()), "stale output")
}

func TestSession_EnsureInitialized_NoOutput(t *testing.T) {
	s := readySession(t, map[string]*uiElement{"#input": newUIElement(true)}, fetcherSeq(""))
	err := s.EnsureInitialized(context.Background(), 100*time.Millisecond)
	require.ErrorIs(t, err, ErrTimeout)
	assert.Contains(t, err.Error(), "terminal output pipeline")
}

func TestSession_ScreenTextAndClose(t *testing.T) {
	rows := newUIElement(true)
	rows.mock.TextContentFunc = func() (string, error) { return "$ oc whoami\nkube:admin", nil }
	drv := newDriver(map[string]*uiElement{"#rows": rows})
	s := New(drv, fetcherSeq(""), testOptions())

	text, err := s.ScreenText()
	require.NoError(t, err)
	assert.Equal(t, "$ oc whoami\nkube:admin", text)

	require.NoError(t, s.Close())
	assert.Len(t, drv.CloseCalls(), 1)
}

func TestNew_Defaults(t *testing.T) {
	s := New(newDriver(nil), fetcherSeq(""), Options{Locators: Locators{TerminalInput: "#a || #b"}})
	assert.Equal(t, 500*time.Millisecond, s.opts.PollInterval)
	assert.Equal(t, 10*time.Second, s.opts.ShortTimeout)
	assert.Equal(t, 60*time.Second, s.opts.SetupTimeout)
	assert.Equal(t, "#a", s.inputSel)
	assert.Equal(t, StateInitializing, s.State())
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Locators.TerminalIcon = "#icon"
	cfg.Locators.TerminalInput = ".xterm-helper-textarea"
	cfg.Locators.RestartButton = "#restart"
	cfg.SentinelFile = "/tmp/out.log"
	cfg.PollIntervalMs = 250
	cfg.ShortTimeoutMs = 5000
	cfg.LongTimeoutMs = 90000

	opts := OptionsFromConfig(cfg, "openshift-terminal", nil)
	assert.Equal(t, "#icon", opts.Locators.TerminalIcon)
	assert.Equal(t, ".xterm-helper-textarea", opts.Locators.TerminalInput)
	assert.Equal(t, "#restart", opts.Locators.RestartButton)
	assert.Equal(t, "/tmp/out.log", opts.SentinelFile)
	assert.Equal(t, "openshift-terminal", opts.Project)
	assert.Equal(t, 250*time.Millisecond, opts.PollInterval)
	assert.Equal(t, 5*time.Second, opts.ShortTimeout)
	assert.Equal(t, 90*time.Second, opts.SetupTimeout)
}

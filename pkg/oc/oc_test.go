package oc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/wtcheck/pkg/config"

	"github.com/umputun/wtcheck/pkg/oc/mocks"
)

type recLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recLogger) Print(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, fmt.Sprintf(format, args...))
}

func (l *recLogger) joined() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.msgs, "\n")
}

func testConfig() Config {
	return Config{
		Namespace:     "openshift-terminal",
		LabelSelector: "console.openshift.io/terminal=true",
		Container:     "tooling",
		SentinelFile:  "/tmp/wtcheck-output.log",
		TailLines:     50,
	}
}

// fakeOC answers the oc sub-commands used by the fetcher.
func fakeOC(pod, tail string) *mocks.CommandRunnerMock {
	return &mocks.CommandRunnerMock{
		RunFunc: func(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
			switch args[0] {
			case "get":
				return []byte(pod), nil, nil
			case "wait":
				return []byte("pod/" + pod + " condition met\n"), nil, nil
			case "exec", "logs":
				return []byte(tail), nil, nil
			}
			return nil, nil, fmt.Errorf("unexpected oc %v", args)
		},
	}
}

func TestNew_Defaults(t *testing.T) {
	f := New(Config{Namespace: "ns"}, nil)
	assert.Equal(t, "oc", f.cfg.Command)
	assert.Equal(t, 200, f.cfg.TailLines)
	assert.Equal(t, ModeExec, f.cfg.Mode)
	assert.Equal(t, 30*time.Second, f.cfg.PodReadyTimeout)
	assert.NotNil(t, f.runner)
}

func TestFetcher_FetchRecentOutput_Exec(t *testing.T) {
	runner := fakeOC("wt-abc-123", "  kube:admin\n\n")
	f := New(testConfig(), nil)
	f.runner = runner

	out := f.FetchRecentOutput(context.Background())
	assert.Equal(t, "kube:admin", out)

	calls := runner.RunCalls()
	require.Len(t, calls, 3)
	for _, c := range calls {
		assert.Equal(t, "oc", c.Name)
	}
	assert.Equal(t, []string{"get", "pods", "-n", "openshift-terminal", "-l", "console.openshift.io/terminal=true",
		"-o", "jsonpath={.items[0].metadata.name}"}, calls[0].Args)
	assert.Equal(t, []string{"wait", "--for=condition=Ready", "pod/wt-abc-123", "-n", "openshift-terminal",
		"--timeout=30s"}, calls[1].Args)
	assert.Equal(t, []string{"exec", "-n", "openshift-terminal", "wt-abc-123", "-c", "tooling", "--",
		"tail", "-n", "50", "/tmp/wtcheck-output.log"}, calls[2].Args)
}

func TestFetcher_FetchRecentOutput_Logs(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = ModeLogs
	runner := fakeOC("unused", "NAME READY\n")
	f := New(cfg, nil)
	f.runner = runner

	assert.Equal(t, "NAME READY", f.FetchRecentOutput(context.Background()))
	calls := runner.RunCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"logs", "-n", "openshift-terminal", "-c", "tooling",
		"-l", "console.openshift.io/terminal=true", "--tail", "50"}, calls[0].Args)
}

func TestFetcher_FetchRecentOutput_FailuresDegradeToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(Config) Config
		runner  *mocks.CommandRunnerMock
		wantLog string
	}{
		{
			name:    "no namespace",
			cfg:     func(c Config) Config { c.Namespace = ""; return c },
			runner:  fakeOC("pod", "out"),
			wantLog: "namespace is not set",
		},
		{
			name:    "no pod",
			cfg:     func(c Config) Config { return c },
			runner:  fakeOC("", "out"),
			wantLog: "no pod matches",
		},
		{
			name: "pod not ready",
			cfg:  func(c Config) Config { return c },
			runner: &mocks.CommandRunnerMock{RunFunc: func(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
				if args[0] == "wait" {
					return nil, []byte("timed out waiting for the condition"), errors.New("exit status 1")
				}
				return []byte("pod"), nil, nil
			}},
			wantLog: "timed out waiting for the condition",
		},
		{
			name: "exec fails",
			cfg:  func(c Config) Config { return c },
			runner: &mocks.CommandRunnerMock{RunFunc: func(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
				if args[0] == "exec" {
					return nil, []byte("tail: cannot open '/tmp/wtcheck-output.log'"), errors.New("exit status 1")
				}
				return []byte("pod"), nil, nil
			}},
			wantLog: "cannot open",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log := &recLogger{}
			f := New(tc.cfg(testConfig()), log)
			f.runner = tc.runner

			assert.Empty(t, f.FetchRecentOutput(context.Background()))
			assert.Contains(t, log.joined(), tc.wantLog)
		})
	}
}

func TestFetcher_StderrOnSuccessIsLogged(t *testing.T) {
	log := &recLogger{}
	f := New(testConfig(), log)
	f.runner = &mocks.CommandRunnerMock{RunFunc: func(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
		if args[0] == "exec" {
			return []byte("zsh"), []byte("Defaulted container"), nil
		}
		return []byte("pod"), nil, nil
	}}

	assert.Equal(t, "zsh", f.FetchRecentOutput(context.Background()))
	assert.Contains(t, log.joined(), "Defaulted container")
}

func TestFetcher_Reset(t *testing.T) {
	runner := fakeOC("wt-pod", "")
	f := New(testConfig(), nil)
	f.runner = runner

	require.NoError(t, f.Reset(context.Background()))
	calls := runner.RunCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"exec", "-n", "openshift-terminal", "wt-pod", "-c", "tooling", "--",
		"sh", "-c", ": > '/tmp/wtcheck-output.log'"}, calls[1].Args)
}

func TestFetcher_Reset_LogsModeNoop(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = ModeLogs
	runner := fakeOC("pod", "")
	f := New(cfg, nil)
	f.runner = runner

	require.NoError(t, f.Reset(context.Background()))
	assert.Empty(t, runner.RunCalls())
}

func TestFetcher_Reset_NoNamespace(t *testing.T) {
	cfg := testConfig()
	cfg.Namespace = ""
	f := New(cfg, nil)
	f.runner = fakeOC("pod", "")
	require.Error(t, f.Reset(context.Background()))
}

func Test_shellQuote(t *testing.T) {
	assert.Equal(t, `'/tmp/a b.log'`, shellQuote("/tmp/a b.log"))
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
}

func TestConfigFrom(t *testing.T) {
	cfg := &config.Config{Env: config.Env{Namespace: "openshift-terminal"}}
	cfg.TerminalLabelSelector = "console.openshift.io/terminal=true"
	cfg.ToolingContainer = "tooling"
	cfg.SentinelFile = "/tmp/out.log"
	cfg.OutputTailLines = 50
	cfg.FetchMode = config.FetchModeLogs
	cfg.PodReadyTimeoutMs = 15000

	c := ConfigFrom(cfg)
	assert.Equal(t, Config{
		Namespace:       "openshift-terminal",
		LabelSelector:   "console.openshift.io/terminal=true",
		Container:       "tooling",
		SentinelFile:    "/tmp/out.log",
		TailLines:       50,
		Mode:            ModeLogs,
		PodReadyTimeout: 15 * time.Second,
	}, c)
}

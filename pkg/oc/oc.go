// Package oc fetches terminal output out-of-band through the oc CLI.
// the web terminal runs inside a pod; commands typed into it append their output
// to a sentinel file, and the fetcher reads the tail of that file (or the container
// logs) without touching the browser.
package oc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/wtcheck/pkg/config"
)

//go:generate moq -out mocks/command_runner.go -pkg mocks -skip-ensure -fmt goimports . CommandRunner

// fetch modes, mirror config.FetchModeExec and config.FetchModeLogs.
const (
	ModeExec = "exec"
	ModeLogs = "logs"
)

// CommandRunner abstracts command execution for testing.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// execCommandRunner is the default command runner using os/exec.
type execCommandRunner struct{}

func (r *execCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("run %s: %w", name, err)
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}

// Logger is the logging dependency, nil disables logging.
type Logger interface {
	Print(format string, args ...any)
}

// Config describes where the terminal lives and how to read its output.
type Config struct {
	Command         string        // oc binary, default "oc"
	Namespace       string        // namespace of the terminal pod
	LabelSelector   string        // label selector matching the terminal pod
	Container       string        // container running the shell
	SentinelFile    string        // file the typed commands append to (exec mode)
	TailLines       int           // lines to read, default 200
	Mode            string        // ModeExec (default) or ModeLogs
	PodReadyTimeout time.Duration // how long to wait for the pod Ready condition, default 30s
}

// Fetcher reads recent terminal output. It never fails loudly: every problem
// degrades to empty output so callers keep polling.
type Fetcher struct {
	cfg    Config
	runner CommandRunner
	log    Logger
}

// ConfigFrom maps the loaded settings and environment to a fetcher Config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Namespace:       cfg.Env.Namespace,
		LabelSelector:   cfg.TerminalLabelSelector,
		Container:       cfg.ToolingContainer,
		SentinelFile:    cfg.SentinelFile,
		TailLines:       cfg.OutputTailLines,
		Mode:            cfg.FetchMode,
		PodReadyTimeout: cfg.PodReadyTimeout(),
	}
}

// New makes a Fetcher with defaults applied.
func New(cfg Config, log Logger) *Fetcher {
	if cfg.Command == "" {
		cfg.Command = "oc"
	}
	if cfg.TailLines <= 0 {
		cfg.TailLines = 200
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeExec
	}
	if cfg.PodReadyTimeout <= 0 {
		cfg.PodReadyTimeout = 30 * time.Second
	}
	return &Fetcher{cfg: cfg, runner: &execCommandRunner{}, log: log}
}

// FetchRecentOutput returns the trimmed tail of the terminal output, or "" on any failure.
func (f *Fetcher) FetchRecentOutput(ctx context.Context) string {
	out, err := f.fetch(ctx)
	if err != nil {
		f.logf("[WARN] fetch terminal output: %v", err)
		return ""
	}
	return out
}

func (f *Fetcher) fetch(ctx context.Context) (string, error) {
	if f.cfg.Namespace == "" {
		return "", errors.New("namespace is not set")
	}

	if f.cfg.Mode == ModeLogs {
		stdout, err := f.run(ctx, "logs", "-n", f.cfg.Namespace, "-c", f.cfg.Container,
			"-l", f.cfg.LabelSelector, "--tail", strconv.Itoa(f.cfg.TailLines))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(stdout), nil
	}

	pod, err := f.PodName(ctx)
	if err != nil {
		return "", err
	}
	if err := f.WaitReady(ctx, pod); err != nil {
		return "", err
	}
	stdout, err := f.run(ctx, "exec", "-n", f.cfg.Namespace, pod, "-c", f.cfg.Container, "--",
		"tail", "-n", strconv.Itoa(f.cfg.TailLines), f.cfg.SentinelFile)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout), nil
}

// PodName returns the name of the first pod matching the label selector.
func (f *Fetcher) PodName(ctx context.Context) (string, error) {
	stdout, err := f.run(ctx, "get", "pods", "-n", f.cfg.Namespace, "-l", f.cfg.LabelSelector,
		"-o", "jsonpath={.items[0].metadata.name}")
	if err != nil {
		return "", fmt.Errorf("find terminal pod: %w", err)
	}
	name := strings.TrimSpace(stdout)
	if name == "" {
		return "", fmt.Errorf("no pod matches %q in %s", f.cfg.LabelSelector, f.cfg.Namespace)
	}
	return name, nil
}

// WaitReady blocks until the pod reports the Ready condition or PodReadyTimeout elapses.
func (f *Fetcher) WaitReady(ctx context.Context, pod string) error {
	if _, err := f.run(ctx, "wait", "--for=condition=Ready", "pod/"+pod, "-n", f.cfg.Namespace,
		"--timeout="+f.cfg.PodReadyTimeout.String()); err != nil {
		return fmt.Errorf("wait for pod %s: %w", pod, err)
	}
	return nil
}

// Reset truncates the sentinel file so later waits only see new output.
// in logs mode there is nothing to truncate and Reset is a no-op.
func (f *Fetcher) Reset(ctx context.Context) error {
	if f.cfg.Mode == ModeLogs {
		return nil
	}
	if f.cfg.Namespace == "" {
		return errors.New("namespace is not set")
	}
	pod, err := f.PodName(ctx)
	if err != nil {
		return err
	}
	if _, err := f.run(ctx, "exec", "-n", f.cfg.Namespace, pod, "-c", f.cfg.Container, "--",
		"sh", "-c", ": > "+shellQuote(f.cfg.SentinelFile)); err != nil {
		return fmt.Errorf("truncate %s: %w", f.cfg.SentinelFile, err)
	}
	return nil
}

// run invokes oc and returns stdout. stderr is folded into the error, or logged when the call succeeded.
func (f *Fetcher) run(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, err := f.runner.Run(ctx, f.cfg.Command, args...)
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		f.logf("[DEBUG] %s %s: %s", f.cfg.Command, args[0], msg)
	}
	return string(stdout), nil
}

func (f *Fetcher) logf(format string, args ...any) {
	if f.log != nil {
		f.log.Print(format, args...)
	}
}

// shellQuote wraps s in single quotes for sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

package scenario

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Terminal is the terminal session a scenario drives.
type Terminal interface {
	TypeAndEnter(cmd string) error
	ProvideInput(text string) error
	WaitForOutputContains(ctx context.Context, substr string, timeout time.Duration) error
	Output(ctx context.Context) string
	WaitForClosed(timeout time.Duration) bool
	Restart(ctx context.Context, timeout time.Duration) error
}

// Logger is the logging dependency, nil disables logging.
type Logger interface {
	Print(format string, args ...any)
}

// step statuses.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// StepResult is the outcome of one step.
type StepResult struct {
	Step     Step
	Status   string
	Closed   bool // await_close saw the terminal close
	Restart  bool // the terminal was restarted
	Duration time.Duration
	Err      error
}

// Result is the outcome of one scenario run.
type Result struct {
	Scenario string
	Source   string
	Started  time.Time
	Duration time.Duration
	Steps    []StepResult
	Cleanup  []StepResult
}

// Passed reports whether every step passed. Cleanup failures don't fail the scenario.
func (r Result) Passed() bool {
	if len(r.Steps) == 0 {
		return false
	}
	for _, s := range r.Steps {
		if s.Status != StatusPassed {
			return false
		}
	}
	return true
}

// Err returns the first step error.
func (r Result) Err() error {
	for _, s := range r.Steps {
		if s.Err != nil {
			return s.Err
		}
	}
	return nil
}

// Options configures a Runner.
type Options struct {
	Timeout        time.Duration     // per step when the step sets none, default 60s
	CleanupTimeout time.Duration     // per cleanup step, default Timeout
	Vars           map[string]string // values for ${NAME} in step fields
	Logger         Logger
	OnStart        func(sc *Scenario) // called by RunAll before each scenario
	OnDone         func(res Result)   // called by RunAll after each scenario
}

// Runner executes scenarios against a terminal, one step at a time.
type Runner struct {
	term Terminal
	opts Options
}

// NewRunner makes a Runner with defaults applied.
func NewRunner(term Terminal, opts Options) *Runner {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.CleanupTimeout <= 0 {
		opts.CleanupTimeout = opts.Timeout
	}
	return &Runner{term: term, opts: opts}
}

// Run executes the steps in order until one fails, then the cleanup steps.
// The remaining steps after a failure or a canceled ctx are reported as skipped.
func (r *Runner) Run(ctx context.Context, sc *Scenario) Result {
	res := Result{Scenario: sc.Name, Source: sc.Source, Started: time.Now()}
	r.logf("scenario %s: %d steps", sc.Name, len(sc.Steps))

	failed := false
	for i, st := range sc.Steps {
		st = st.withVars(r.opts.Vars)
		if failed || ctx.Err() != nil {
			res.Steps = append(res.Steps, StepResult{Step: st, Status: StatusSkipped, Err: ctx.Err()})
			continue
		}
		r.logf("step %d/%d: %s", i+1, len(sc.Steps), st.Label())
		sr := r.runStep(ctx, st, r.opts.Timeout)
		if sr.Status == StatusFailed {
			failed = true
			r.logf("[WARN] step %q failed: %v", st.Label(), sr.Err)
		}
		res.Steps = append(res.Steps, sr)
	}

	// cleanup still runs when the run was canceled
	cleanupCtx := context.WithoutCancel(ctx)
	for _, st := range sc.Cleanup {
		st = st.withVars(r.opts.Vars)
		r.logf("cleanup: %s", st.Label())
		sr := r.runStep(cleanupCtx, st, r.opts.CleanupTimeout)
		if sr.Status == StatusFailed {
			r.logf("[WARN] cleanup %q failed: %v", st.Label(), sr.Err)
		}
		res.Cleanup = append(res.Cleanup, sr)
	}

	res.Duration = time.Since(res.Started)
	return res
}

func (r *Runner) runStep(ctx context.Context, st Step, defTimeout time.Duration) StepResult {
	start := time.Now()
	sr := StepResult{Step: st, Status: StatusPassed}
	if err := r.execStep(ctx, st, defTimeout, &sr); err != nil {
		sr.Status = StatusFailed
		sr.Err = err
	}
	sr.Duration = time.Since(start)
	return sr
}

func (r *Runner) execStep(ctx context.Context, st Step, defTimeout time.Duration, sr *StepResult) error {
	timeout := st.Timeout
	if timeout <= 0 {
		timeout = defTimeout
	}

	switch {
	case st.Run != "":
		if err := r.term.TypeAndEnter(st.Run); err != nil {
			return fmt.Errorf("send %q: %w", st.Run, err)
		}
	case st.Input != "":
		if err := r.term.ProvideInput(st.Input); err != nil {
			return fmt.Errorf("send input %q: %w", st.Input, err)
		}
	}

	if st.Expect != "" {
		if err := r.term.WaitForOutputContains(ctx, st.Expect, timeout); err != nil {
			return err
		}
	}

	if len(st.ExpectAll) > 0 {
		out := r.term.Output(ctx)
		var missing []string
		for _, want := range st.ExpectAll {
			if !strings.Contains(out, want) {
				missing = append(missing, want)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("output is missing %s", quoteList(missing))
		}
	}

	if st.AwaitClose == "" {
		return nil
	}
	sr.Closed = r.term.WaitForClosed(timeout)
	switch {
	case !sr.Closed && st.AwaitClose == AwaitRequired:
		return fmt.Errorf("terminal did not close within %v", timeout)
	case !sr.Closed:
		r.logf("terminal stayed open, continuing")
		return nil
	case !st.Restart:
		return nil
	}

	r.logf("terminal closed, restarting")
	if err := r.term.Restart(ctx, timeout); err != nil {
		return fmt.Errorf("restart terminal: %w", err)
	}
	sr.Restart = true
	return nil
}

func (r *Runner) logf(format string, args ...any) {
	if r.opts.Logger != nil {
		r.opts.Logger.Print(format, args...)
	}
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}

// RunAll runs the scenarios one after another and returns their results.
// A failed scenario doesn't stop the next one, a canceled ctx does.
func (r *Runner) RunAll(ctx context.Context, scenarios []*Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("scenarios interrupted: %w", err)
		}
		if r.opts.OnStart != nil {
			r.opts.OnStart(sc)
		}
		res := r.Run(ctx, sc)
		results = append(results, res)
		if r.opts.OnDone != nil {
			r.opts.OnDone(res)
		}
	}
	return results, nil
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed() {
			n++
		}
	}
	return n
}

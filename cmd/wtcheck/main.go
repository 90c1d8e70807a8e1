// Package main provides wtcheck, acceptance checks of the web console terminal driven through a real browser.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/umputun/wtcheck/pkg/browser"
	"github.com/umputun/wtcheck/pkg/config"
	"github.com/umputun/wtcheck/pkg/console"
	"github.com/umputun/wtcheck/pkg/notify"
	"github.com/umputun/wtcheck/pkg/oc"
	"github.com/umputun/wtcheck/pkg/progress"
	"github.com/umputun/wtcheck/pkg/scenario"
	"github.com/umputun/wtcheck/pkg/status"
	"github.com/umputun/wtcheck/pkg/terminal"
)

// opts holds all command-line options.
type opts struct {
	Scenarios []string `short:"s" long:"scenario" description:"scenario file to run, repeatable"`
	Builtins  []string `short:"b" long:"builtin" description:"builtin scenario to run, repeatable (basic, shell, image, storage, timeout)"`
	Config    string   `short:"c" long:"config" description:"settings file, overrides the global config"`
	Report    string   `short:"r" long:"report" description:"write the markdown report to this file"`
	Project   string   `short:"p" long:"project" description:"project to start a new terminal in"`
	List      bool     `short:"l" long:"list" description:"list builtin scenarios and exit"`
	Install   bool     `long:"install" description:"install the playwright driver and chromium before the run"`
	Debug     bool     `short:"d" long:"debug" description:"enable debug logging"`
	NoColor   bool     `long:"no-color" description:"disable color output"`
	Version   bool     `short:"v" long:"version" description:"print version and exit"`
}

var revision = "unknown"

// errScenariosFailed is returned when the run completed but some scenarios failed.
var errScenariosFailed = errors.New("scenarios failed")

func main() {
	fmt.Printf("wtcheck %s\n", revision)

	var o opts
	parser := flags.NewParser(&o, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if o.Version {
		os.Exit(0)
	}
	if o.List {
		for _, name := range scenario.BuiltinNames() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	restore := disableCtrlCEcho()
	defer restore()

	// setup context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, o); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		restore()
		cancel()
		os.Exit(1) //nolint:gocritic // restore and cancel called explicitly above
	}
}

func run(ctx context.Context, o opts) error {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	scenarios, err := loadScenarios(o)
	if err != nil {
		return err
	}

	if envErr := cfg.Env.ValidateTerminal(); envErr != nil {
		return envErr
	}

	phases := &status.PhaseHolder{}
	log, err := progress.NewLogger(progress.Config{
		Name:      runName(scenarios),
		Console:   cfg.Env.ConsoleURL,
		Namespace: cfg.Env.Namespace,
		Mode:      cfg.Env.Mode,
		NoColor:   o.NoColor,
		Debug:     o.Debug,
		Phases:    phases,
	})
	if err != nil {
		return fmt.Errorf("create run log: %w", err)
	}
	defer log.Close()

	notifier, err := notify.New(notify.ParamsFromConfig(cfg.Values), log)
	if err != nil {
		return fmt.Errorf("configure notifications: %w", err)
	}

	log.Print("run log: %s", log.Path())
	shots := map[string]string{}
	results, runErr := execute(ctx, cfg, o, scenarios, log, shots)

	log.SetPhase(status.PhaseReport)
	md := scenario.Report(results)
	if o.Report != "" {
		if wErr := os.WriteFile(o.Report, []byte(md), 0o600); wErr != nil {
			log.Warn("write report %s: %v", o.Report, wErr)
		} else {
			log.Print("report written to %s", o.Report)
		}
	}
	if rendered, renderErr := scenario.Render(md, o.NoColor); renderErr == nil {
		fmt.Print(rendered)
	} else {
		fmt.Print(md)
	}

	summary := notify.ResultFrom(results, runErr).WithScreenshots(shots)
	summary.Mode = cfg.Env.Mode
	summary.Console = cfg.Env.ConsoleURL
	summary.Namespace = cfg.Env.Namespace
	summary.Duration = log.Elapsed()
	summary.Report = o.Report
	summary.RunLog = log.Path()
	notifier.Send(context.WithoutCancel(ctx), summary)

	if runErr != nil {
		return runErr
	}
	if failed := scenario.Failed(results); failed > 0 {
		log.Error("%d of %d scenarios failed", failed, len(results))
		return fmt.Errorf("%w: %d of %d", errScenariosFailed, failed, len(results))
	}
	log.Pass("all %d scenarios passed in %s", len(results), log.Elapsed())
	return nil
}

// execute logs in, opens the terminal and runs the scenarios. Results collected before an error are returned,
// failure screenshots are recorded in shots by scenario name.
func execute(ctx context.Context, cfg *config.Config, o opts, scenarios []*scenario.Scenario, log *progress.Logger,
	shots map[string]string) ([]scenario.Result, error) {
	log.SetPhase(status.PhaseSetup)
	rt, err := browser.Start(browser.RuntimeOptions{Install: o.Install, Headless: cfg.Env.Headless})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			log.Debug("close browser: %v", err)
		}
	}()

	page, err := rt.NewPage()
	if err != nil {
		return nil, err
	}
	defer page.Close() //nolint:errcheck // the browser is going away anyway

	if err := console.LoginFromEnv(ctx, page, cfg, log); err != nil {
		captureFailure(page, cfg.ScreenshotsDir, "login", log)
		return nil, fmt.Errorf("login: %w", err)
	}

	log.SetPhase(status.PhaseTerminal)
	fetcher := oc.New(oc.ConfigFrom(cfg), log)
	sess, err := terminal.Open(ctx, page, fetcher, terminal.OptionsFromConfig(cfg, o.Project, log))
	if err != nil {
		captureFailure(page, cfg.ScreenshotsDir, "terminal", log)
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	sess.OnStateChange(func(old, cur terminal.State) { log.Debug("terminal %s -> %s", old, cur) })

	if err := sess.EnsureInitialized(ctx, cfg.LongTimeout()); err != nil {
		captureFailure(page, cfg.ScreenshotsDir, "terminal", log)
		return nil, fmt.Errorf("initialize terminal: %w", err)
	}

	runner := scenario.NewRunner(sess, scenario.Options{
		Timeout: cfg.LongTimeout(),
		Vars:    scenarioVars(cfg),
		Logger:  log,
		OnStart: func(sc *scenario.Scenario) { log.Section("scenario: " + sc.Name) },
		OnDone: func(res scenario.Result) {
			if res.Passed() {
				log.Pass("scenario %s passed (%s)", res.Scenario, res.Duration.Round(100*time.Millisecond))
				return
			}
			log.Error("scenario %s failed: %v", res.Scenario, res.Err())
			if screen, err := sess.ScreenText(); err == nil {
				log.PrintAligned(screen)
			}
			if path := captureFailure(page, cfg.ScreenshotsDir, res.Scenario, log); path != "" {
				shots[res.Scenario] = path
			}
		},
	})
	return runner.RunAll(ctx, scenarios)
}

// loadScenarios returns the builtin scenarios followed by the scenario files; basic when none is requested.
func loadScenarios(o opts) ([]*scenario.Scenario, error) {
	builtins := o.Builtins
	if len(builtins) == 0 && len(o.Scenarios) == 0 {
		builtins = []string{"basic"}
	}

	res := make([]*scenario.Scenario, 0, len(builtins)+len(o.Scenarios))
	for _, name := range builtins {
		sc, err := scenario.Builtin(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		res = append(res, sc)
	}
	for _, file := range o.Scenarios {
		sc, err := scenario.Load(file)
		if err != nil {
			return nil, err
		}
		res = append(res, sc)
	}
	return res, nil
}

// runName names the run log after the scenario when there is only one.
func runName(scenarios []*scenario.Scenario) string {
	if len(scenarios) == 1 {
		return scenarios[0].Name
	}
	return "run"
}

// scenarioVars are the values scenarios can reference as ${NAME}.
func scenarioVars(cfg *config.Config) map[string]string {
	return map[string]string{
		"IDENTITY":  cfg.Env.ExpectedIdentity(),
		"USERNAME":  cfg.Env.LoginUser(),
		"NAMESPACE": cfg.Env.Namespace,
	}
}

// screenshotPath returns dir/<name>-failure.png with name made safe for a file name.
func screenshotPath(dir, name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' || r == ':' {
			return '_'
		}
		return r
	}, name)
	return filepath.Join(dir, name+"-failure.png")
}

// captureFailure saves a screenshot named after the failed stage and returns its path, empty when none was taken.
func captureFailure(d browser.Driver, dir, name string, log *progress.Logger) string {
	if dir == "" {
		return ""
	}
	path := screenshotPath(dir, name)
	if err := d.Screenshot(path); err != nil {
		log.Warn("screenshot %s: %v", path, err)
		return ""
	}
	log.Print("screenshot saved to %s", path)
	return path
}

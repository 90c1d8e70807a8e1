// Package console logs into the web console through its login page.
package console

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/umputun/wtcheck/pkg/browser"
	"github.com/umputun/wtcheck/pkg/config"
)

// AdminProvider is the identity provider of the built-in cluster admin.
const AdminProvider = "kube:admin"

// landingURL matches the pages the console shows after a successful login.
var landingURL = regexp.MustCompile(`overview|dashboards`)

// Logger is the logging dependency, nil disables logging.
type Logger interface {
	Print(format string, args ...any)
}

// LoginOptions describes whom to log in as.
type LoginOptions struct {
	Mode       string // config.ModeAdmin or config.ModeUser
	ConsoleURL string
	Username   string // defaults to kubeadmin in admin mode
	Password   string
	Provider   string // identity provider button, defaults to kube:admin in admin mode

	UsernameLocator string // locator setting, alternatives separated by "||"
	PasswordLocator string

	ProviderTimeout time.Duration // how long to look for the provider button, default 8s
	FormTimeout     time.Duration // how long to wait for the login form, default 15s
	LandingTimeout  time.Duration // how long to wait for the console after submit, default 30s
	Logger          Logger
}

// Login opens the console, picks the identity provider if the page offers it, fills the
// credentials and waits until the console landing page is shown.
func Login(ctx context.Context, d browser.Driver, opts LoginOptions) error {
	opts = withDefaults(opts)
	if opts.ConsoleURL == "" {
		return errors.New("console url is not set")
	}

	logf(opts.Logger, "opening console %s", opts.ConsoleURL)
	if err := d.Goto(opts.ConsoleURL, browser.GotoOptions{Timeout: opts.LandingTimeout}); err != nil {
		return fmt.Errorf("open console: %w", err)
	}

	if opts.Provider != "" {
		btn := d.LocateRole("button", opts.Provider)
		if err := btn.WaitFor(browser.StateVisible, opts.ProviderTimeout); err == nil {
			logf(opts.Logger, "selecting identity provider %s", opts.Provider)
			if err := btn.Click(opts.FormTimeout); err != nil {
				return fmt.Errorf("select identity provider %s: %w", opts.Provider, err)
			}
		} else {
			logf(opts.Logger, "identity provider %s not shown, continuing", opts.Provider)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	userInput, err := browser.ProbeSetting(d, opts.UsernameLocator, opts.FormTimeout)
	if err != nil {
		return fmt.Errorf("find username field: %w", err)
	}
	passInput, err := browser.ProbeSetting(d, opts.PasswordLocator, opts.FormTimeout)
	if err != nil {
		return fmt.Errorf("find password field: %w", err)
	}
	loginBtn := d.LocateRole("button", "Log in")
	if err := loginBtn.WaitFor(browser.StateVisible, opts.FormTimeout); err != nil {
		return fmt.Errorf("find login button: %w", err)
	}

	logf(opts.Logger, "logging in as %s", opts.Username)
	if err := userInput.Fill(opts.Username); err != nil {
		return fmt.Errorf("fill username: %w", err)
	}
	if err := passInput.Fill(opts.Password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}
	if err := loginBtn.Click(opts.FormTimeout); err != nil {
		return fmt.Errorf("submit login form: %w", err)
	}
	if err := d.WaitForURL(landingURL, opts.LandingTimeout); err != nil {
		return fmt.Errorf("login as %s: %w", opts.Username, err)
	}
	logf(opts.Logger, "logged in as %s", opts.Username)
	return nil
}

// LoginFromEnv logs in with the credentials of the configured TEST_MODE.
func LoginFromEnv(ctx context.Context, d browser.Driver, cfg *config.Config, log Logger) error {
	if err := cfg.Env.ValidateTerminal(); err != nil {
		return err
	}
	return Login(ctx, d, OptionsFromConfig(cfg, log))
}

// OptionsFromConfig maps the loaded configuration to login options, timeouts keep their defaults.
func OptionsFromConfig(cfg *config.Config, log Logger) LoginOptions {
	return LoginOptions{
		Mode:            cfg.Env.Mode,
		ConsoleURL:      cfg.Env.ConsoleURL,
		Username:        cfg.Env.LoginUser(),
		Password:        cfg.Env.LoginPassword(),
		Provider:        cfg.Env.IdentityProvider,
		UsernameLocator: cfg.Locators.UsernameInput,
		PasswordLocator: cfg.Locators.PasswordInput,
		Logger:          log,
	}
}

func withDefaults(opts LoginOptions) LoginOptions {
	if opts.Mode == "" {
		opts.Mode = config.ModeAdmin
	}
	if opts.Mode == config.ModeAdmin {
		if opts.Provider == "" {
			opts.Provider = AdminProvider
		}
		if opts.Username == "" {
			opts.Username = "kubeadmin"
		}
	}
	if opts.UsernameLocator == "" {
		opts.UsernameLocator = "#inputUsername || #Username"
	}
	if opts.PasswordLocator == "" {
		opts.PasswordLocator = "#inputPassword || #Password"
	}
	if opts.ProviderTimeout <= 0 {
		opts.ProviderTimeout = 8 * time.Second
	}
	if opts.FormTimeout <= 0 {
		opts.FormTimeout = 15 * time.Second
	}
	if opts.LandingTimeout <= 0 {
		opts.LandingTimeout = 30 * time.Second
	}
	return opts
}

func logf(l Logger, format string, args ...any) {
	if l != nil {
		l.Print(format, args...)
	}
}

// Package notify reports the outcome of a wtcheck run to chat, mail, webhooks or a user script.
// Delivery is best-effort: failures are logged as warnings and never fail the run.
package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	ntfy "github.com/go-pkgz/notify"

	"github.com/umputun/wtcheck/pkg/config"
	"github.com/umputun/wtcheck/pkg/scenario"
)

// run statuses.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// errorExcerpt caps the step error quoted in a message.
const errorExcerpt = 160

// Logger is the logging dependency.
type Logger interface {
	Print(format string, args ...any)
}

// Scenario summarizes one scenario of the run.
type Scenario struct {
	Name        string `json:"name"`
	Passed      bool   `json:"passed"`
	Steps       int    `json:"steps"`
	StepsPassed int    `json:"steps_passed"`
	Duration    string `json:"duration"`
	FailedStep  string `json:"failed_step,omitempty"`
	Error       string `json:"error,omitempty"`
	Screenshot  string `json:"screenshot,omitempty"`
}

// Result is the run summary sent to every channel, and as JSON to the custom script.
type Result struct {
	Status    string     `json:"status"`
	Mode      string     `json:"mode,omitempty"`
	Console   string     `json:"console,omitempty"`
	Namespace string     `json:"namespace,omitempty"`
	Duration  string     `json:"duration,omitempty"`
	Scenarios []Scenario `json:"scenarios"`
	Report    string     `json:"report,omitempty"`
	RunLog    string     `json:"run_log,omitempty"`
	Error     string     `json:"error,omitempty"` // run level error, e.g. a failed login
}

// ResultFrom summarizes the scenario results. Any failed scenario or runErr fails the run.
func ResultFrom(results []scenario.Result, runErr error) Result {
	r := Result{Status: StatusPassed, Scenarios: make([]Scenario, 0, len(results))}
	for _, res := range results {
		sc := Scenario{Name: res.Scenario, Passed: res.Passed(), Steps: len(res.Steps), Duration: res.Duration.Round(time.Second).String()}
		for _, st := range res.Steps {
			switch {
			case st.Status == scenario.StatusPassed:
				sc.StepsPassed++
			case st.Err != nil && sc.FailedStep == "":
				sc.FailedStep = st.Step.Label()
				sc.Error = excerpt(st.Err.Error())
			}
		}
		if !sc.Passed {
			r.Status = StatusFailed
		}
		r.Scenarios = append(r.Scenarios, sc)
	}
	if runErr != nil {
		r.Status = StatusFailed
		r.Error = excerpt(runErr.Error())
	}
	return r
}

// WithScreenshots attaches failure screenshots keyed by scenario name.
func (r Result) WithScreenshots(shots map[string]string) Result {
	r.Scenarios = slices.Clone(r.Scenarios)
	for i := range r.Scenarios {
		if path, ok := shots[r.Scenarios[i].Name]; ok {
			r.Scenarios[i].Screenshot = path
		}
	}
	return r
}

// Failed returns the names of the failed scenarios.
func (r Result) Failed() []string {
	var names []string
	for _, sc := range r.Scenarios {
		if !sc.Passed {
			names = append(names, sc.Name)
		}
	}
	return names
}

// Params are the notify_* settings.
type Params struct {
	Channels      []string
	OnError       bool
	OnComplete    bool
	Timeout       time.Duration
	TelegramToken string
	TelegramChat  string
	SlackToken    string
	SlackChannel  string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPStartTLS  bool
	EmailFrom     string
	EmailTo       []string
	WebhookURLs   []string
	CustomScript  string
}

// ParamsFromConfig maps the notify_* settings to Params.
func ParamsFromConfig(v config.Values) Params {
	return Params{
		Channels:      v.NotifyChannels,
		OnError:       v.NotifyOnError,
		OnComplete:    v.NotifyOnComplete,
		Timeout:       time.Duration(v.NotifyTimeoutMs) * time.Millisecond,
		TelegramToken: v.NotifyTelegramToken,
		TelegramChat:  v.NotifyTelegramChat,
		SlackToken:    v.NotifySlackToken,
		SlackChannel:  v.NotifySlackChannel,
		SMTPHost:      v.NotifySMTPHost,
		SMTPPort:      v.NotifySMTPPort,
		SMTPUsername:  v.NotifySMTPUsername,
		SMTPPassword:  v.NotifySMTPPassword,
		SMTPStartTLS:  v.NotifySMTPStartTLS,
		EmailFrom:     v.NotifyEmailFrom,
		EmailTo:       v.NotifyEmailTo,
		WebhookURLs:   v.NotifyWebhookURLs,
		CustomScript:  v.NotifyCustomScript,
	}
}

// target is one destination of a go-pkgz/notify notifier.
type target struct {
	notifier ntfy.Notifier
	dest     string
	wrap     func(msg string) string // channel specific markup, nil sends the plain text
}

// Service sends run results to the configured channels.
type Service struct {
	targets []target
	script  *customChannel
	send    map[string]bool // statuses that are reported
	timeout time.Duration
	host    string
	log     Logger
}

// newTelegram is replaced in tests, the real constructor calls the bot API.
var newTelegram = func(token string) (ntfy.Notifier, error) {
	return ntfy.NewTelegram(ntfy.TelegramParams{Token: token})
}

// New builds the Service. It returns nil without channels; Send on a nil Service does nothing.
// A misconfigured channel is an error, an unreachable telegram bot only a warning.
func New(p Params, log Logger) (*Service, error) {
	if len(p.Channels) == 0 {
		return nil, nil //nolint:nilnil // nil service means notifications are off
	}

	host, err := os.Hostname()
	if err != nil {
		host = "unknown host"
	}
	svc := &Service{
		send:    map[string]bool{StatusFailed: p.OnError, StatusPassed: p.OnComplete},
		timeout: p.Timeout,
		host:    host,
		log:     log,
	}
	if svc.timeout <= 0 {
		svc.timeout = 10 * time.Second
	}

	for _, name := range p.Channels {
		name = strings.ToLower(strings.TrimSpace(name))
		if err := svc.add(name, p); err != nil {
			return nil, fmt.Errorf("%s notifications: %w", name, err)
		}
	}
	if len(svc.targets) == 0 && svc.script == nil {
		log.Print("[WARN] notifications configured but no channel is usable")
	}
	return svc, nil
}

func (s *Service) add(name string, p Params) error {
	switch name {
	case "telegram":
		if err := required(setting{"notify_telegram_token", p.TelegramToken != ""}, setting{"notify_telegram_chat", p.TelegramChat != ""}); err != nil {
			return err
		}
		tg, err := newTelegram(p.TelegramToken)
		if err != nil {
			s.log.Print("[WARN] telegram disabled: %s", strings.ReplaceAll(err.Error(), p.TelegramToken, "***"))
			return nil
		}
		s.targets = append(s.targets, target{notifier: tg, dest: "telegram:" + p.TelegramChat + "?parseMode=HTML",
			wrap: func(msg string) string { return "<pre>" + html.EscapeString(msg) + "</pre>" }})
	case "slack":
		if err := required(setting{"notify_slack_token", p.SlackToken != ""}, setting{"notify_slack_channel", p.SlackChannel != ""}); err != nil {
			return err
		}
		s.targets = append(s.targets, target{notifier: ntfy.NewSlack(p.SlackToken), dest: "slack:" + p.SlackChannel,
			wrap: func(msg string) string { return "```\n" + msg + "```" }})
	case "email":
		if err := required(setting{"notify_smtp_host", p.SMTPHost != ""}, setting{"notify_email_from", p.EmailFrom != ""},
			setting{"notify_email_to", len(p.EmailTo) > 0}); err != nil {
			return err
		}
		em := ntfy.NewEmail(ntfy.SMTPParams{Host: p.SMTPHost, Port: p.SMTPPort, Username: p.SMTPUsername,
			Password: p.SMTPPassword, StartTLS: p.SMTPStartTLS})
		q := url.Values{"from": {p.EmailFrom}, "subject": {"wtcheck run"}}
		s.targets = append(s.targets, target{notifier: em, dest: "mailto:" + strings.Join(p.EmailTo, ",") + "?" + q.Encode()})
	case "webhook":
		if err := required(setting{"notify_webhook_urls", len(p.WebhookURLs) > 0}); err != nil {
			return err
		}
		wh := ntfy.NewWebhook(ntfy.WebhookParams{})
		for _, u := range p.WebhookURLs {
			s.targets = append(s.targets, target{notifier: wh, dest: u})
		}
	case "custom":
		if err := required(setting{"notify_custom_script", p.CustomScript != ""}); err != nil {
			return err
		}
		s.script = newCustomChannel(p.CustomScript)
	default:
		return errors.New("unknown channel")
	}
	return nil
}

type setting struct {
	name string
	set  bool
}

// required reports every setting that is not set.
func required(settings ...setting) error {
	var missing []string
	for _, st := range settings {
		if !st.set {
			missing = append(missing, st.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// Send reports r if its status is enabled by notify_on_error or notify_on_complete.
func (s *Service) Send(ctx context.Context, r Result) {
	if s == nil || !s.send[r.Status] {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	msg := s.message(r)
	for _, t := range s.targets {
		text := msg
		if t.wrap != nil {
			text = t.wrap(msg)
		}
		if err := t.notifier.Send(ctx, t.dest, text); err != nil {
			s.log.Print("[WARN] notify %s: %v", t.notifier, err)
		}
	}
	if s.script != nil {
		if err := s.script.send(ctx, r); err != nil {
			s.log.Print("[WARN] notify script: %v", err)
		}
	}
}

// message renders r as plain text, one line per scenario.
func (s *Service) message(r Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "wtcheck %s on %s", r.Status, s.host)
	if r.Mode != "" || r.Duration != "" {
		fmt.Fprintf(&b, " (%s)", strings.Join(nonEmpty(r.Mode, r.Duration), ", "))
	}
	b.WriteString("\n")
	if r.Console != "" {
		fmt.Fprintf(&b, "console %s\n", r.Console)
	}
	if r.Namespace != "" {
		fmt.Fprintf(&b, "namespace %s\n", r.Namespace)
	}

	if len(r.Scenarios) > 0 {
		b.WriteString("\n")
	}
	for _, sc := range r.Scenarios {
		mark := "[x]"
		if !sc.Passed {
			mark = "[ ]"
		}
		fmt.Fprintf(&b, "%s %s %d/%d %s\n", mark, sc.Name, sc.StepsPassed, sc.Steps, sc.Duration)
		if sc.FailedStep != "" {
			fmt.Fprintf(&b, "    %q: %s\n", sc.FailedStep, sc.Error)
		}
		if sc.Screenshot != "" {
			fmt.Fprintf(&b, "    screenshot %s\n", sc.Screenshot)
		}
	}

	if r.Error != "" {
		fmt.Fprintf(&b, "\nerror: %s\n", r.Error)
	}
	if r.Report != "" || r.RunLog != "" {
		b.WriteString("\n")
	}
	if r.Report != "" {
		fmt.Fprintf(&b, "report %s\n", r.Report)
	}
	if r.RunLog != "" {
		fmt.Fprintf(&b, "run log %s\n", r.RunLog)
	}
	return b.String()
}

func nonEmpty(values ...string) []string {
	var res []string
	for _, v := range values {
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

// excerpt keeps the first line of an error message, capped to errorExcerpt runes.
func excerpt(msg string) string {
	msg, _, _ = strings.Cut(msg, "\n")
	if r := []rune(msg); len(r) > errorExcerpt {
		return string(r[:errorExcerpt]) + "..."
	}
	return msg
}

package config

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// Values holds settings loaded from config files.
// Fields ending in *Set track whether a boolean was explicitly set, so a local
// config can switch off something the global config switched on.
type Values struct {
	PollIntervalMs    int
	ShortTimeoutMs    int
	LongTimeoutMs     int
	SetupTimeoutMs    int
	PodReadyTimeoutMs int

	SentinelFile          string
	OutputTailLines       int
	ToolingContainer      string
	TerminalLabelSelector string
	FetchMode             string // exec or logs
	ScreenshotsDir        string

	Locators Locators

	NotifyChannels      []string
	NotifyOnError       bool
	NotifyOnErrorSet    bool
	NotifyOnComplete    bool
	NotifyOnCompleteSet bool
	NotifyTimeoutMs     int
	NotifyTelegramToken string
	NotifyTelegramChat  string
	NotifySlackToken    string
	NotifySlackChannel  string
	NotifySMTPHost      string
	NotifySMTPPort      int
	NotifySMTPUsername  string
	NotifySMTPPassword  string
	NotifySMTPStartTLS  bool
	NotifyEmailFrom     string
	NotifyEmailTo       []string
	NotifyWebhookURLs   []string
	NotifyCustomScript  string
}

// Locators holds selector candidates for console elements, each value may list
// several selectors separated by "||".
type Locators struct {
	TerminalIcon  string
	StartButton   string
	ProjectInput  string
	TerminalInput string
	TerminalRows  string
	RestartButton string
	ClosedMessage string
	UsernameInput string
	PasswordInput string
}

// valuesLoader loads Values with embedded filesystem fallback.
type valuesLoader struct {
	embedFS embed.FS
}

func newValuesLoader(embedFS embed.FS) *valuesLoader {
	return &valuesLoader{embedFS: embedFS}
}

// Load loads values with fallback chain: local → global → embedded.
// localConfigPath and globalConfigPath are full paths to config files, empty means skip.
func (vl *valuesLoader) Load(localConfigPath, globalConfigPath string) (Values, error) {
	data, err := vl.embedFS.ReadFile("defaults/config")
	if err != nil {
		return Values{}, fmt.Errorf("read embedded defaults: %w", err)
	}
	embedded, err := parseValues(data)
	if err != nil {
		return Values{}, fmt.Errorf("parse embedded defaults: %w", err)
	}

	global, err := parseValuesFile(globalConfigPath)
	if err != nil {
		return Values{}, fmt.Errorf("parse global config: %w", err)
	}

	local, err := parseValuesFile(localConfigPath)
	if err != nil {
		return Values{}, fmt.Errorf("parse local config: %w", err)
	}

	result := embedded
	result.mergeFrom(&global)
	result.mergeFrom(&local)
	return result, nil
}

// parseValuesFile reads and parses a config file.
// returns empty Values (not error) if the file doesn't exist or has only comments.
func parseValuesFile(path string) (Values, error) {
	if path == "" {
		return Values{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from flag or home dir
	if err != nil {
		if os.IsNotExist(err) {
			return Values{}, nil
		}
		return Values{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if strings.TrimSpace(stripComments(string(data))) == "" {
		return Values{}, nil
	}
	return parseValues(data)
}

// keyReader pulls typed values out of an ini section and remembers the first error.
type keyReader struct {
	section *ini.Section
	err     error
}

func (r *keyReader) str(name string, dst *string) {
	if key, err := r.section.GetKey(name); err == nil {
		*dst = strings.TrimSpace(key.String())
	}
}

func (r *keyReader) positiveInt(name string, dst *int) {
	key, err := r.section.GetKey(name)
	if err != nil || r.err != nil {
		return
	}
	if strings.TrimSpace(key.String()) == "" {
		return
	}
	val, intErr := key.Int()
	if intErr != nil {
		r.err = fmt.Errorf("invalid %s: %w", name, intErr)
		return
	}
	if val <= 0 {
		r.err = fmt.Errorf("invalid %s: must be positive, got %d", name, val)
		return
	}
	*dst = val
}

func (r *keyReader) boolean(name string, dst, set *bool) {
	key, err := r.section.GetKey(name)
	if err != nil || r.err != nil {
		return
	}
	if strings.TrimSpace(key.String()) == "" {
		return
	}
	val, boolErr := key.Bool()
	if boolErr != nil {
		r.err = fmt.Errorf("invalid %s: %w", name, boolErr)
		return
	}
	*dst = val
	if set != nil {
		*set = true
	}
}

func (r *keyReader) list(name string, dst *[]string) {
	key, err := r.section.GetKey(name)
	if err != nil {
		return
	}
	for p := range strings.SplitSeq(key.String(), ",") {
		if t := strings.TrimSpace(p); t != "" {
			*dst = append(*dst, t)
		}
	}
}

// parseValues parses ini content into Values.
func parseValues(data []byte) (Values, error) {
	// selectors contain '#', so it can't be an inline comment marker
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return Values{}, fmt.Errorf("parse config: %w", err)
	}

	var v Values
	r := &keyReader{section: cfg.Section("")}

	r.positiveInt("poll_interval_ms", &v.PollIntervalMs)
	r.positiveInt("short_timeout_ms", &v.ShortTimeoutMs)
	r.positiveInt("long_timeout_ms", &v.LongTimeoutMs)
	r.positiveInt("setup_timeout_ms", &v.SetupTimeoutMs)
	r.positiveInt("pod_ready_timeout_ms", &v.PodReadyTimeoutMs)

	r.str("sentinel_file", &v.SentinelFile)
	r.positiveInt("output_tail_lines", &v.OutputTailLines)
	r.str("tooling_container", &v.ToolingContainer)
	r.str("terminal_label_selector", &v.TerminalLabelSelector)
	r.str("fetch_mode", &v.FetchMode)
	r.str("screenshots_dir", &v.ScreenshotsDir)

	r.str("locator_terminal_icon", &v.Locators.TerminalIcon)
	r.str("locator_start_button", &v.Locators.StartButton)
	r.str("locator_project_input", &v.Locators.ProjectInput)
	r.str("locator_terminal_input", &v.Locators.TerminalInput)
	r.str("locator_terminal_rows", &v.Locators.TerminalRows)
	r.str("locator_restart_button", &v.Locators.RestartButton)
	r.str("locator_closed_message", &v.Locators.ClosedMessage)
	r.str("locator_username", &v.Locators.UsernameInput)
	r.str("locator_password", &v.Locators.PasswordInput)

	r.list("notify_channels", &v.NotifyChannels)
	r.boolean("notify_on_error", &v.NotifyOnError, &v.NotifyOnErrorSet)
	r.boolean("notify_on_complete", &v.NotifyOnComplete, &v.NotifyOnCompleteSet)
	r.positiveInt("notify_timeout_ms", &v.NotifyTimeoutMs)
	r.str("notify_telegram_token", &v.NotifyTelegramToken)
	r.str("notify_telegram_chat", &v.NotifyTelegramChat)
	r.str("notify_slack_token", &v.NotifySlackToken)
	r.str("notify_slack_channel", &v.NotifySlackChannel)
	r.str("notify_smtp_host", &v.NotifySMTPHost)
	r.positiveInt("notify_smtp_port", &v.NotifySMTPPort)
	r.str("notify_smtp_username", &v.NotifySMTPUsername)
	r.str("notify_smtp_password", &v.NotifySMTPPassword)
	r.boolean("notify_smtp_starttls", &v.NotifySMTPStartTLS, nil)
	r.str("notify_email_from", &v.NotifyEmailFrom)
	r.list("notify_email_to", &v.NotifyEmailTo)
	r.list("notify_webhook_urls", &v.NotifyWebhookURLs)
	r.str("notify_custom_script", &v.NotifyCustomScript)

	if r.err != nil {
		return Values{}, r.err
	}

	if v.FetchMode != "" && v.FetchMode != FetchModeExec && v.FetchMode != FetchModeLogs {
		return Values{}, fmt.Errorf("invalid fetch_mode %q, must be %s or %s", v.FetchMode, FetchModeExec, FetchModeLogs)
	}
	return v, nil
}

// mergeFrom merges non-empty values from src into dst.
//
//nolint:gocyclo // flat list of field copies
func (dst *Values) mergeFrom(src *Values) {
	mergeInt := func(d *int, s int) {
		if s != 0 {
			*d = s
		}
	}
	mergeStr := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}
	mergeList := func(d *[]string, s []string) {
		if len(s) > 0 {
			*d = s
		}
	}

	mergeInt(&dst.PollIntervalMs, src.PollIntervalMs)
	mergeInt(&dst.ShortTimeoutMs, src.ShortTimeoutMs)
	mergeInt(&dst.LongTimeoutMs, src.LongTimeoutMs)
	mergeInt(&dst.SetupTimeoutMs, src.SetupTimeoutMs)
	mergeInt(&dst.PodReadyTimeoutMs, src.PodReadyTimeoutMs)

	mergeStr(&dst.SentinelFile, src.SentinelFile)
	mergeInt(&dst.OutputTailLines, src.OutputTailLines)
	mergeStr(&dst.ToolingContainer, src.ToolingContainer)
	mergeStr(&dst.TerminalLabelSelector, src.TerminalLabelSelector)
	mergeStr(&dst.FetchMode, src.FetchMode)
	mergeStr(&dst.ScreenshotsDir, src.ScreenshotsDir)

	mergeStr(&dst.Locators.TerminalIcon, src.Locators.TerminalIcon)
	mergeStr(&dst.Locators.StartButton, src.Locators.StartButton)
	mergeStr(&dst.Locators.ProjectInput, src.Locators.ProjectInput)
	mergeStr(&dst.Locators.TerminalInput, src.Locators.TerminalInput)
	mergeStr(&dst.Locators.TerminalRows, src.Locators.TerminalRows)
	mergeStr(&dst.Locators.RestartButton, src.Locators.RestartButton)
	mergeStr(&dst.Locators.ClosedMessage, src.Locators.ClosedMessage)
	mergeStr(&dst.Locators.UsernameInput, src.Locators.UsernameInput)
	mergeStr(&dst.Locators.PasswordInput, src.Locators.PasswordInput)

	mergeList(&dst.NotifyChannels, src.NotifyChannels)
	if src.NotifyOnErrorSet {
		dst.NotifyOnError = src.NotifyOnError
		dst.NotifyOnErrorSet = true
	}
	if src.NotifyOnCompleteSet {
		dst.NotifyOnComplete = src.NotifyOnComplete
		dst.NotifyOnCompleteSet = true
	}
	mergeInt(&dst.NotifyTimeoutMs, src.NotifyTimeoutMs)
	mergeStr(&dst.NotifyTelegramToken, src.NotifyTelegramToken)
	mergeStr(&dst.NotifyTelegramChat, src.NotifyTelegramChat)
	mergeStr(&dst.NotifySlackToken, src.NotifySlackToken)
	mergeStr(&dst.NotifySlackChannel, src.NotifySlackChannel)
	mergeStr(&dst.NotifySMTPHost, src.NotifySMTPHost)
	mergeInt(&dst.NotifySMTPPort, src.NotifySMTPPort)
	mergeStr(&dst.NotifySMTPUsername, src.NotifySMTPUsername)
	mergeStr(&dst.NotifySMTPPassword, src.NotifySMTPPassword)
	if src.NotifySMTPStartTLS {
		dst.NotifySMTPStartTLS = true
	}
	mergeStr(&dst.NotifyEmailFrom, src.NotifyEmailFrom)
	mergeList(&dst.NotifyEmailTo, src.NotifyEmailTo)
	mergeList(&dst.NotifyWebhookURLs, src.NotifyWebhookURLs)
	mergeStr(&dst.NotifyCustomScript, src.NotifyCustomScript)
}

// stripComments removes lines starting with '#' (after trimming whitespace).
func stripComments(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := make([]string, 0, strings.Count(content, "\n")+1)
	for line := range strings.SplitSeq(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

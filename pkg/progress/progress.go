// Package progress writes the run log: timestamped lines to stdout with colors and to a log file without.
// messages starting with "[WARN] " or "[DEBUG] ", as emitted by the library packages through their
// Logger interfaces, are routed to Warn and Debug.
package progress

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/umputun/wtcheck/pkg/status"
)

// phase colors using fatih/color.
var (
	setupColor     = color.New(color.FgGreen)
	terminalColor  = color.New(color.FgCyan)
	editorColor    = color.New(color.FgMagenta)
	warnColor      = color.New(color.FgYellow)
	errorColor     = color.New(color.FgRed)
	passColor      = color.New(color.FgGreen, color.Bold)
	debugColor     = color.New(color.FgHiBlack)
	sectionColor   = color.New(color.Bold)
	timestampColor = color.New(color.FgWhite)
)

var phaseColors = map[status.Phase]*color.Color{
	status.PhaseSetup:    setupColor,
	status.PhaseTerminal: terminalColor,
	status.PhaseEditor:   editorColor,
	status.PhaseReport:   setupColor,
}

// Config holds logger configuration.
type Config struct {
	Dir       string              // directory for the run log, default current
	Name      string              // run name used in the log file name, default "run"
	Console   string              // console url, for the header
	Namespace string              // terminal namespace, for the header
	Mode      string              // login mode, for the header
	NoColor   bool                // disable color output (sets color.NoColor globally)
	Debug     bool                // print debug messages to stdout, the file always gets them
	Phases    *status.PhaseHolder // shared phase, a private holder is used when nil
}

// Logger writes timestamped output to both file and stdout.
type Logger struct {
	mu        sync.Mutex
	file      *os.File
	path      string
	stdout    io.Writer
	startTime time.Time
	phases    *status.PhaseHolder
	debug     bool
}

// NewLogger creates a logger writing to both a run log file and stdout.
func NewLogger(cfg Config) (*Logger, error) {
	if cfg.NoColor {
		color.NoColor = true
	}

	start := time.Now()
	logPath := logFilename(cfg.Dir, cfg.Name, start)
	if dir := filepath.Dir(logPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create run log dir: %w", err)
		}
	}

	f, err := os.Create(logPath) //nolint:gosec // path built from config
	if err != nil {
		return nil, fmt.Errorf("create run log: %w", err)
	}

	phases := cfg.Phases
	if phases == nil {
		phases = &status.PhaseHolder{}
	}
	l := &Logger{file: f, path: logPath, stdout: os.Stdout, startTime: start, phases: phases, debug: cfg.Debug}

	l.writeFile("# wtcheck run log\n")
	l.writeFile("Console: %s\n", orDash(cfg.Console))
	l.writeFile("Namespace: %s\n", orDash(cfg.Namespace))
	l.writeFile("Mode: %s\n", orDash(cfg.Mode))
	l.writeFile("Started: %s\n", start.Format("2006-01-02 15:04:05"))
	l.writeFile("%s\n\n", strings.Repeat("-", 60))

	return l, nil
}

// Path returns the run log path.
func (l *Logger) Path() string {
	return l.path
}

// SetPhase sets the current phase for color coding.
func (l *Logger) SetPhase(phase status.Phase) {
	l.phases.Set(phase)
}

// timestampFormat is the format for timestamps: YY-MM-DD HH:MM:SS
const timestampFormat = "06-01-02 15:04:05"

// Print writes a timestamped message to both file and stdout.
func (l *Logger) Print(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	switch {
	case strings.HasPrefix(msg, "[WARN] "):
		l.Warn("%s", strings.TrimPrefix(msg, "[WARN] "))
		return
	case strings.HasPrefix(msg, "[DEBUG] "):
		l.Debug("%s", strings.TrimPrefix(msg, "[DEBUG] "))
		return
	}
	l.line("", msg, l.phaseColor())
}

// Section writes a header line separating run stages, e.g. one per scenario.
func (l *Logger) Section(title string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeFile("\n--- %s ---\n", title)
	l.writeStdout("\n%s\n", sectionColor.Sprintf("--- %s ---", title))
}

// getTerminalWidth returns terminal width, using COLUMNS env var or syscall.
// Defaults to 80 if detection fails. Returns content width (total - 20 for timestamp).
func getTerminalWidth() int {
	const minWidth = 40

	width := 80
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			width = w
		}
	} else if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return max(width-20, minWidth)
}

// wrapText wraps text to width, breaking on word boundaries.
func wrapText(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		switch {
		case i == 0:
			lineLen = len(word)
		case lineLen+1+len(word) <= width:
			result.WriteString(" ")
			lineLen += 1 + len(word)
		default:
			result.WriteString("\n")
			lineLen = len(word)
		}
		result.WriteString(word)
	}
	return result.String()
}

// PrintAligned writes multi-line text such as captured terminal output. The first line
// gets the timestamp, continuation lines are indented to match.
func (l *Logger) PrintAligned(text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format(timestampFormat)
	phaseColor := l.phaseColor()
	tsPrefix := timestampColor.Sprintf("[%s]", timestamp)
	indent := strings.Repeat(" ", 20) // aligns with "[YY-MM-DD HH:MM:SS] "
	width := getTerminalWidth()

	var lines []string
	for line := range strings.SplitSeq(text, "\n") {
		if len(line) > width {
			lines = append(lines, strings.Split(wrapText(line, width), "\n")...)
			continue
		}
		lines = append(lines, line)
	}

	for i, line := range lines {
		switch {
		case line == "":
			l.writeFile("\n")
			l.writeStdout("\n")
		case i == 0:
			l.writeFile("[%s] %s\n", timestamp, line)
			l.writeStdout("%s %s\n", tsPrefix, phaseColor.Sprint(line))
		default:
			l.writeFile("%s%s\n", indent, line)
			l.writeStdout("%s%s\n", indent, phaseColor.Sprint(line))
		}
	}
}

// Pass writes a check that succeeded.
func (l *Logger) Pass(format string, args ...any) {
	l.line("[OK] ", fmt.Sprintf(format, args...), passColor)
}

// Error writes an error message in red.
func (l *Logger) Error(format string, args ...any) {
	l.line("ERROR: ", fmt.Sprintf(format, args...), errorColor)
}

// Warn writes a warning message in yellow.
func (l *Logger) Warn(format string, args ...any) {
	l.line("WARN: ", fmt.Sprintf(format, args...), warnColor)
}

// Debug writes a debug message to the file, and to stdout in debug mode.
func (l *Logger) Debug(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format(timestampFormat)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeFile("[%s] DEBUG: %s\n", timestamp, msg)
	if l.debug {
		l.writeStdout("%s %s\n", timestampColor.Sprintf("[%s]", timestamp), debugColor.Sprintf("DEBUG: %s", msg))
	}
}

// Elapsed returns formatted elapsed time since start.
func (l *Logger) Elapsed() string {
	return humanize.RelTime(l.startTime, time.Now(), "", "")
}

// Close writes the footer and closes the run log.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}

	l.writeFile("\n%s\n", strings.Repeat("-", 60))
	l.writeFile("Completed: %s (%s)\n", time.Now().Format("2006-01-02 15:04:05"), l.Elapsed())

	err := l.file.Close()
	l.file = nil
	if err != nil {
		return fmt.Errorf("close run log: %w", err)
	}
	return nil
}

func (l *Logger) line(prefix, msg string, c *color.Color) {
	timestamp := time.Now().Format(timestampFormat)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeFile("[%s] %s%s\n", timestamp, prefix, msg)
	l.writeStdout("%s %s\n", timestampColor.Sprintf("[%s]", timestamp), c.Sprint(prefix+msg))
}

func (l *Logger) phaseColor() *color.Color {
	if c, ok := phaseColors[l.phases.Get()]; ok {
		return c
	}
	return setupColor
}

func (l *Logger) writeFile(format string, args ...any) {
	if l.file != nil {
		fmt.Fprintf(l.file, format, args...)
	}
}

func (l *Logger) writeStdout(format string, args ...any) {
	fmt.Fprintf(l.stdout, format, args...)
}

// logFilename returns the run log path, e.g. wtcheck-basic-20260114-093000.log.
func logFilename(dir, name string, start time.Time) string {
	if name == "" {
		name = "run"
	}
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' || r == ':' {
			return '_'
		}
		return r
	}, name)
	return filepath.Join(dir, fmt.Sprintf("wtcheck-%s-%s.log", name, start.Format("20060102-150405")))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

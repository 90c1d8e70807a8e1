package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
)

// Report formats the results as markdown: a summary table and a section per scenario.
func Report(results []Result) string {
	var b strings.Builder
	b.WriteString("# wtcheck report\n\n")
	if len(results) == 0 {
		b.WriteString("no scenarios were run\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%d of %d scenarios passed\n\n", len(results)-Failed(results), len(results))
	b.WriteString("| scenario | result | steps | duration |\n")
	b.WriteString("|----------|--------|-------|----------|\n")
	for _, r := range results {
		fmt.Fprintf(&b, "| %s | %s | %d/%d | %s |\n", r.Scenario, resultWord(r), passedSteps(r.Steps), len(r.Steps), round(r.Duration))
	}

	for _, r := range results {
		fmt.Fprintf(&b, "\n## %s\n\n", r.Scenario)
		if r.Source != "" {
			fmt.Fprintf(&b, "source: `%s`\n\n", r.Source)
		}
		writeSteps(&b, r.Steps)
		if len(r.Cleanup) > 0 {
			b.WriteString("\ncleanup:\n\n")
			writeSteps(&b, r.Cleanup)
		}
	}
	return b.String()
}

func writeSteps(b *strings.Builder, steps []StepResult) {
	for i, s := range steps {
		mark := " "
		if s.Status == StatusPassed {
			mark = "x"
		}
		fmt.Fprintf(b, "%d. [%s] `%s`", i+1, mark, s.Step.Label())
		switch s.Status {
		case StatusPassed:
			fmt.Fprintf(b, " (%s", round(s.Duration))
			if s.Restart {
				b.WriteString(", restarted")
			} else if s.Closed {
				b.WriteString(", closed")
			}
			b.WriteString(")\n")
		case StatusSkipped:
			b.WriteString(" skipped\n")
		default:
			fmt.Fprintf(b, " failed: %v\n", s.Err)
		}
	}
}

func resultWord(r Result) string {
	if r.Passed() {
		return StatusPassed
	}
	return StatusFailed
}

func passedSteps(steps []StepResult) int {
	n := 0
	for _, s := range steps {
		if s.Status == StatusPassed {
			n++
		}
	}
	return n
}

func round(d time.Duration) string {
	return d.Round(100 * time.Millisecond).String()
}

// Render renders markdown for terminal display.
// If noColor is true, returns the content unchanged.
func Render(content string, noColor bool) (string, error) {
	if noColor {
		return content, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	result, err := renderer.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return result, nil
}

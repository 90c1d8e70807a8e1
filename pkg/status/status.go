// Package status defines the run phases shared by the progress logger and the CLI.
package status

// Phase is the stage of a run, used for color coding of the run log.
type Phase string

// run phases.
const (
	PhaseSetup    Phase = "setup"    // config, browser, login (green)
	PhaseTerminal Phase = "terminal" // terminal scenarios (cyan)
	PhaseEditor   Phase = "editor"   // web editor checks (magenta)
	PhaseReport   Phase = "report"   // report and notifications (green)
)

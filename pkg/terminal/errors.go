package terminal

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimeout is matched by every TimeoutError.
	ErrTimeout = errors.New("output wait timed out")
	// ErrRestartTimeout is matched by every RestartTimeoutError.
	ErrRestartTimeout = errors.New("terminal restart timed out")
	// ErrNotClosed is returned by Restart when the session was not seen closed.
	ErrNotClosed = errors.New("terminal is not closed")
	// ErrRestartInProgress is returned by Restart while another restart runs on the same session.
	ErrRestartInProgress = errors.New("terminal restart already in progress")
)

// TimeoutError is returned when the expected text did not show up in the terminal output in time.
type TimeoutError struct {
	Expected   string
	LastOutput string // most recent fetch result, may be empty
	Timeout    time.Duration
}

func (e *TimeoutError) Error() string {
	last := e.LastOutput
	if last == "" {
		last = "<empty>"
	}
	return fmt.Sprintf("output did not contain %q within %v, last output: %s", e.Expected, e.Timeout, last)
}

// Is makes errors.Is(err, ErrTimeout) work.
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// RestartTimeoutError is returned when the input surface did not come back after a restart.
type RestartTimeoutError struct {
	Timeout time.Duration
	Err     error // underlying wait error
}

func (e *RestartTimeoutError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("terminal input did not reappear within %v after restart", e.Timeout)
	}
	return fmt.Sprintf("terminal input did not reappear within %v after restart: %v", e.Timeout, e.Err)
}

// Is makes errors.Is(err, ErrRestartTimeout) work.
func (e *RestartTimeoutError) Is(target error) bool { return target == ErrRestartTimeout }

func (e *RestartTimeoutError) Unwrap() error { return e.Err }

package terminal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/umputun/wtcheck/pkg/browser"
	"github.com/umputun/wtcheck/pkg/poll"
)

// WaitForClosed waits up to timeout for the "connection closed" notice. It never fails:
// closing is expected after some commands and not others, so the outcome is reported as a bool.
// on true the session moves to closed, unless a restart is running.
func (s *Session) WaitForClosed(timeout time.Duration) bool {
	closed := browser.LocateAny(s.driver, s.opts.Locators.ClosedMessage)
	if _, err := browser.Probe(timeout, closed...); err != nil {
		return false
	}

	restart := browser.LocateAny(s.driver, s.opts.Locators.RestartButton)
	if _, err := browser.Probe(s.opts.ShortTimeout, restart...); err != nil {
		s.logf("[WARN] terminal closed but restart control is not visible: %v", err)
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return true
	}
	cb := s.setStateLocked(StateClosed)
	s.mu.Unlock()
	if cb != nil {
		cb()
	}
	s.logf("terminal connection closed")
	return true
}

// Restart clicks the restart control and waits up to timeout for the terminal input to come back.
// the session must have been seen closed by WaitForClosed, otherwise ErrNotClosed is returned.
// on timeout the session stays in restarting until it is seen closed again or reopened.
func (s *Session) Restart(ctx context.Context, timeout time.Duration) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ErrRestartInProgress
	}
	if s.state != StateClosed {
		st := s.state
		s.mu.Unlock()
		return fmt.Errorf("%w: state is %s", ErrNotClosed, st)
	}
	s.inFlight = true
	cb := s.setStateLocked(StateRestarting)
	s.mu.Unlock()
	if cb != nil {
		cb()
	}
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	btn, err := browser.ProbeSetting(s.driver, s.opts.Locators.RestartButton, s.opts.ShortTimeout)
	if err != nil {
		return fmt.Errorf("find restart control: %w", err)
	}
	if err := btn.Click(s.opts.ShortTimeout); err != nil {
		return fmt.Errorf("click restart: %w", err)
	}
	s.logf("terminal restart requested")

	input, err := s.waitInput(ctx, browser.Candidates(s.opts.Locators.TerminalInput), timeout)
	if err != nil {
		if errors.Is(err, poll.ErrDeadline) {
			return &RestartTimeoutError{Timeout: timeout, Err: err}
		}
		return fmt.Errorf("restart terminal: %w", err)
	}
	s.markReady(input)
	s.logf("terminal restarted")
	return nil
}

package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/wtcheck/pkg/poll"
)

// WaitForOutputContains polls the fetched output until it contains substr.
// the first fetch happens right away, later ones every poll interval. empty output counts as no match.
// returns *TimeoutError carrying the last fetched output when the timeout elapses.
func (s *Session) WaitForOutputContains(ctx context.Context, substr string, timeout time.Duration) error {
	if substr == "" {
		return errors.New("expected output is empty")
	}
	if timeout <= 0 {
		return fmt.Errorf("invalid output wait timeout %v", timeout)
	}

	var last string
	err := poll.Until(ctx, s.opts.PollInterval, timeout, func(ctx context.Context) (bool, error) {
		out := s.fetcher.FetchRecentOutput(ctx)
		if ctx.Err() != nil {
			return false, nil // fetch cut by the deadline, keep the previous output
		}
		last = out
		return strings.Contains(out, substr), nil
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, poll.ErrDeadline):
		return &TimeoutError{Expected: substr, LastOutput: last, Timeout: timeout}
	default:
		return fmt.Errorf("wait for %q: %w", substr, err)
	}
}

// Output fetches the recent terminal output once.
func (s *Session) Output(ctx context.Context) string {
	return s.fetcher.FetchRecentOutput(ctx)
}

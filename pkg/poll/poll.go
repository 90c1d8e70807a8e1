// Package poll provides the retry-until combinator used by every wait in the harness.
package poll

import (
	"context"
	"errors"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v5"
)

// ErrDeadline is returned when the condition did not hold before the timeout elapsed.
var ErrDeadline = errors.New("condition not met before deadline")

// errNotYet marks an attempt where the check ran fine but reported false.
var errNotYet = errors.New("not yet")

// CheckFunc reports whether the awaited condition holds.
// errors are treated as "not yet" and retried; the last one is kept for diagnostics.
type CheckFunc func(ctx context.Context) (bool, error)

// Until calls check immediately and then every interval until it returns true or timeout elapses.
// returns nil on success, an error wrapping ErrDeadline on timeout, or the parent context error
// if ctx itself was canceled.
func Until(ctx context.Context, interval, timeout time.Duration, check CheckFunc) error {
	if interval <= 0 {
		return fmt.Errorf("invalid poll interval %v", interval)
	}
	if timeout <= 0 {
		return fmt.Errorf("invalid poll timeout %v", timeout)
	}

	pollCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var lastErr error
	err := retry.New(
		retry.Attempts(0), // unlimited, bounded by pollCtx
		retry.Delay(interval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(pollCtx),
	).Do(func() error {
		ok, checkErr := check(pollCtx)
		if checkErr != nil {
			lastErr = checkErr
			return checkErr
		}
		if !ok {
			return errNotYet
		}
		return nil
	})
	if err == nil {
		return nil
	}

	// parent canceled, not our deadline
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if lastErr != nil {
		return fmt.Errorf("%w after %v, last error: %v", ErrDeadline, timeout, lastErr)
	}
	return fmt.Errorf("%w after %v", ErrDeadline, timeout)
}

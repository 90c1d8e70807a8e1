package browser

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoCandidate is returned by Probe when no candidate became visible in time.
var ErrNoCandidate = errors.New("no candidate became visible")

// Probe waits for any of the candidates to become visible and returns the index of the first one.
// all candidates are waited on concurrently with the same timeout; waits still running when
// the winner is found are left to expire on their own.
func Probe(timeout time.Duration, candidates ...Element) (int, error) {
	if len(candidates) == 0 {
		return -1, fmt.Errorf("%w: nothing to probe", ErrNoCandidate)
	}

	type result struct {
		idx int
		err error
	}
	results := make(chan result, len(candidates)) // buffered so late waiters never block
	for i, c := range candidates {
		go func(i int, c Element) {
			results <- result{idx: i, err: c.WaitFor(StateVisible, timeout)}
		}(i, c)
	}

	var errs []error
	for range candidates {
		r := <-results
		if r.err == nil {
			return r.idx, nil
		}
		errs = append(errs, fmt.Errorf("candidate %d: %w", r.idx, r.err))
	}
	return -1, fmt.Errorf("%w within %v: %w", ErrNoCandidate, timeout, errors.Join(errs...))
}

// ProbeSetting resolves the alternatives of a locator setting and returns the first visible element.
func ProbeSetting(d Driver, setting string, timeout time.Duration) (Element, error) {
	elems := LocateAny(d, setting)
	idx, err := Probe(timeout, elems...)
	if err != nil {
		return nil, fmt.Errorf("probe %q: %w", setting, err)
	}
	return elems[idx], nil
}

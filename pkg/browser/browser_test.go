package browser_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/wtcheck/pkg/browser"
	"github.com/umputun/wtcheck/pkg/browser/mocks"
)

// elementAfter returns an element that becomes visible after delay, or never when delay is negative.
func elementAfter(delay time.Duration) *mocks.ElementMock {
	return &mocks.ElementMock{
		WaitForFunc: func(state browser.State, timeout time.Duration) error {
			if delay < 0 || delay > timeout {
				time.Sleep(timeout)
				return errors.New("timeout exceeded")
			}
			time.Sleep(delay)
			return nil
		},
	}
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "#a", want: []string{"#a"}},
		{in: "#inputUsername || #Username", want: []string{"#inputUsername", "#Username"}},
		{in: ` button[data-test="x"] ||  || div:has-text("a b") `, want: []string{`button[data-test="x"]`, `div:has-text("a b")`}},
		{in: "", want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, browser.Candidates(tc.in))
		})
	}
}

func TestLocateAny(t *testing.T) {
	var located []string
	drv := &mocks.DriverMock{LocateFunc: func(selector string) browser.Element {
		located = append(located, selector)
		return &mocks.ElementMock{}
	}}

	elems := browser.LocateAny(drv, "#one || #two")
	assert.Len(t, elems, 2)
	assert.Equal(t, []string{"#one", "#two"}, located)
}

func TestProbe(t *testing.T) {
	t.Run("first visible wins", func(t *testing.T) {
		idx, err := browser.Probe(time.Second, elementAfter(300*time.Millisecond), elementAfter(10*time.Millisecond),
			elementAfter(-1))
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	})

	t.Run("single candidate", func(t *testing.T) {
		idx, err := browser.Probe(time.Second, elementAfter(0))
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
	})

	t.Run("none visible", func(t *testing.T) {
		start := time.Now()
		idx, err := browser.Probe(100*time.Millisecond, elementAfter(-1), elementAfter(-1))
		require.ErrorIs(t, err, browser.ErrNoCandidate)
		assert.Equal(t, -1, idx)
		assert.Contains(t, err.Error(), "candidate 0")
		assert.Contains(t, err.Error(), "candidate 1")
		assert.Less(t, time.Since(start), time.Second, "candidates are waited on concurrently")
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := browser.Probe(time.Second)
		require.ErrorIs(t, err, browser.ErrNoCandidate)
	})

	t.Run("waits for visible state with the given timeout", func(t *testing.T) {
		el := elementAfter(0)
		_, err := browser.Probe(250*time.Millisecond, el)
		require.NoError(t, err)
		calls := el.WaitForCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, browser.StateVisible, calls[0].State)
		assert.Equal(t, 250*time.Millisecond, calls[0].Timeout)
	})
}

func TestProbeSetting(t *testing.T) {
	form := elementAfter(-1)
	running := elementAfter(0)
	drv := &mocks.DriverMock{LocateFunc: func(selector string) browser.Element {
		if selector == ".xterm-helper-textarea" {
			return running
		}
		return form
	}}

	el, err := browser.ProbeSetting(drv, `button[data-test-id="submit-button"] || .xterm-helper-textarea`, 200*time.Millisecond)
	require.NoError(t, err)
	assert.Same(t, running, el)

	_, err = browser.ProbeSetting(drv, "#missing", 50*time.Millisecond)
	require.ErrorIs(t, err, browser.ErrNoCandidate)
	assert.Contains(t, err.Error(), `probe "#missing"`)
}

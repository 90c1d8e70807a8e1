package lease

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLease_AcquireRelease(t *testing.T) {
	l := New("openshift-terminal")
	assert.Empty(t, l.Holder())
	assert.Equal(t, "openshift-terminal", l.Name())

	release, err := l.Acquire(context.Background(), "TestBasicCommands")
	require.NoError(t, err)
	assert.Equal(t, "TestBasicCommands", l.Holder())

	release()
	assert.Empty(t, l.Holder())
	release() // second call is a no-op

	release2, err := l.Acquire(context.Background(), "TestChangeShell")
	require.NoError(t, err)
	assert.Equal(t, "TestChangeShell", l.Holder())
	release2()
}

func TestLease_AcquireBlocksUntilReleased(t *testing.T) {
	l := New("ns")
	release, err := l.Acquire(context.Background(), "first")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		rel, err := l.Acquire(context.Background(), "second")
		if err == nil {
			close(acquired)
			rel()
		}
	}()

	select {
	case <-acquired:
		t.Fatal("second holder got the lease while the first still holds it")
	case <-time.After(100 * time.Millisecond):
	}

	release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second holder never got the lease")
	}
}

func TestLease_AcquireCanceled(t *testing.T) {
	l := New("ns")
	release, err := l.Acquire(context.Background(), "first")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "second")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "held by first")
	assert.Equal(t, "first", l.Holder())
}

func TestLease_TryAcquire(t *testing.T) {
	l := New("ns")
	release, ok := l.TryAcquire("a")
	require.True(t, ok)

	_, ok = l.TryAcquire("b")
	assert.False(t, ok)

	release()
	release, ok = l.TryAcquire("b")
	require.True(t, ok)
	assert.Equal(t, "b", l.Holder())
	release()
}

func TestLease_NoOverlap(t *testing.T) {
	l := New("ns")
	var active, maxActive atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), "worker")
			if err != nil {
				return
			}
			defer release()
			n := active.Add(1)
			for {
				m := maxActive.Load()
				if n <= m || maxActive.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			active.Add(-1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxActive.Load())
}

func TestRegistry_For(t *testing.T) {
	var r Registry
	a := r.For("ns-a")
	assert.Same(t, a, r.For("ns-a"))
	assert.NotSame(t, a, r.For("ns-b"))
}

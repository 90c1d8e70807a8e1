// Package lease serializes access to the shared remote terminal.
// the console gives every user one terminal per namespace, so two runs against the same
// namespace would type into the same shell. holders acquire the lease before opening a terminal.
package lease

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Lease is a single-slot lock with a recorded owner.
type Lease struct {
	name string
	sem  *semaphore.Weighted

	mu     sync.Mutex
	holder string
}

// New makes a lease for the named resource, usually the terminal namespace.
func New(name string) *Lease {
	return &Lease{name: name, sem: semaphore.NewWeighted(1)}
}

// Acquire blocks until the lease is free or ctx is done. The returned release func is
// idempotent and must be called when the holder is finished with the resource.
func (l *Lease) Acquire(ctx context.Context, owner string) (func(), error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("acquire %s for %s (held by %s): %w", l.name, owner, l.Holder(), err)
	}
	return l.take(owner), nil
}

// TryAcquire takes the lease only if it is free right now.
func (l *Lease) TryAcquire(owner string) (func(), bool) {
	if !l.sem.TryAcquire(1) {
		return nil, false
	}
	return l.take(owner), true
}

// take records owner and returns its release func, the slot must already be held.
func (l *Lease) take(owner string) func() {
	l.mu.Lock()
	l.holder = owner
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.holder = ""
			l.mu.Unlock()
			l.sem.Release(1)
		})
	}
}

// Holder returns the current owner, "" when the lease is free.
func (l *Lease) Holder() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holder
}

// Name returns the leased resource name.
func (l *Lease) Name() string { return l.name }

// Registry hands out one lease per resource name.
type Registry struct {
	mu     sync.Mutex
	leases map[string]*Lease
}

// For returns the lease for name, creating it on first use.
func (r *Registry) For(name string) *Lease {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.leases == nil {
		r.leases = map[string]*Lease{}
	}
	l, ok := r.leases[name]
	if !ok {
		l = New(name)
		r.leases[name] = l
	}
	return l
}

package status

import "sync"

// PhaseHolder keeps the current run phase, safe for concurrent use.
// the progress logger reads it for every line, the CLI moves it between run stages.
type PhaseHolder struct {
	mu       sync.RWMutex
	phase    Phase
	onChange func(old, cur Phase)
}

// OnChange registers a callback fired when the phase changes.
// only one callback is supported; subsequent calls replace the previous one.
func (h *PhaseHolder) OnChange(fn func(old, cur Phase)) {
	h.mu.Lock()
	h.onChange = fn
	h.mu.Unlock()
}

// Set moves to phase p. The callback runs after the lock is released.
func (h *PhaseHolder) Set(p Phase) {
	h.mu.Lock()
	old := h.get()
	h.phase = p
	cb := h.onChange
	h.mu.Unlock()

	if old != p && cb != nil {
		cb(old, p)
	}
}

// Get returns the current phase, PhaseSetup before the first Set.
func (h *PhaseHolder) Get() Phase {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.get()
}

func (h *PhaseHolder) get() Phase {
	if h.phase == "" {
		return PhaseSetup
	}
	return h.phase
}

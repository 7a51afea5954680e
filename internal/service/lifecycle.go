package service

import "sync"

// ─── Request lifecycle ──────────────────────────────────────────────────────
//
// Each view owns one Tracker. Issuing a request advances the token;
// every fold application for a stream is guarded by the token the
// stream was started with. A superseded stream keeps delivering events
// but they no longer pass the guard, so stale responses can never
// overwrite state for a newer request, whether or not the old
// connection could be torn down.

// Phase is the request-lifecycle state of one view.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseErrored:
		return "errored"
	}
	return "unknown"
}

// Tracker is the per-view request state machine. Safe for use from the
// stream goroutine and the UI loop concurrently.
type Tracker struct {
	mu    sync.Mutex
	phase Phase
	token uint64
}

// Begin starts a new request: the token advances, invalidating any
// in-flight stream, and the phase becomes Loading. Returns the token
// the new stream must present on every fold.
func (t *Tracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token++
	t.phase = PhaseLoading
	return t.token
}

// Current reports whether token still identifies the active request.
// Checked before each fold application.
func (t *Tracker) Current(token uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return token == t.token
}

// Finish marks the request Loaded if token is still current.
func (t *Tracker) Finish(token uint64) bool {
	return t.transition(token, PhaseLoaded)
}

// Fail marks the request Errored if token is still current.
func (t *Tracker) Fail(token uint64) bool {
	return t.transition(token, PhaseErrored)
}

// Cancel abandons the active request: the token advances so the
// in-flight stream's remaining events are dropped, and the phase
// returns to Idle.
func (t *Tracker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token++
	t.phase = PhaseIdle
}

// Phase returns the current lifecycle phase.
func (t *Tracker) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

func (t *Tracker) transition(token uint64, to Phase) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if token != t.token {
		return false
	}
	t.phase = to
	return true
}

package service

import (
	"sync"
	"testing"
)

func TestTrackerLifecycle(t *testing.T) {
	var tr Tracker

	if tr.Phase() != PhaseIdle {
		t.Fatalf("initial phase = %v, want idle", tr.Phase())
	}

	token := tr.Begin()
	if tr.Phase() != PhaseLoading {
		t.Errorf("phase after Begin = %v, want loading", tr.Phase())
	}
	if !tr.Current(token) {
		t.Error("fresh token not current")
	}

	if !tr.Finish(token) {
		t.Error("Finish with current token = false")
	}
	if tr.Phase() != PhaseLoaded {
		t.Errorf("phase after Finish = %v, want loaded", tr.Phase())
	}
}

func TestTrackerStaleToken(t *testing.T) {
	var tr Tracker

	stale := tr.Begin()
	fresh := tr.Begin() // second request supersedes the first

	if tr.Current(stale) {
		t.Error("superseded token still current")
	}
	if !tr.Current(fresh) {
		t.Error("fresh token not current")
	}

	// Completion of the abandoned stream must not disturb the phase.
	if tr.Finish(stale) {
		t.Error("Finish with stale token = true")
	}
	if tr.Phase() != PhaseLoading {
		t.Errorf("phase = %v, want loading (stale finish ignored)", tr.Phase())
	}

	if tr.Fail(stale) {
		t.Error("Fail with stale token = true")
	}
}

func TestTrackerCancel(t *testing.T) {
	var tr Tracker

	token := tr.Begin()
	tr.Cancel()

	if tr.Current(token) {
		t.Error("cancelled token still current")
	}
	if tr.Phase() != PhaseIdle {
		t.Errorf("phase after Cancel = %v, want idle", tr.Phase())
	}

	// Late events from the cancelled stream are dropped, and a new
	// request starts cleanly.
	next := tr.Begin()
	if !tr.Current(next) {
		t.Error("token after cancel+begin not current")
	}
	if next == token {
		t.Error("token not advanced by cancel")
	}
}

func TestTrackerConcurrent(t *testing.T) {
	var tr Tracker
	token := tr.Begin()

	// Concurrent Current checks against concurrent Begin calls must be
	// race-free; correctness of the winner is checked afterwards.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Current(token)
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Begin()
		}()
	}
	wg.Wait()

	if tr.Current(token) {
		t.Error("original token current after later Begins")
	}
	if tr.Phase() != PhaseLoading {
		t.Errorf("phase = %v, want loading", tr.Phase())
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "idle"},
		{PhaseLoading, "loading"},
		{PhaseLoaded, "loaded"},
		{PhaseErrored, "errored"},
		{Phase(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

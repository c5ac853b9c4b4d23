package bot

import (
	"testing"
	"time"
)

func TestSessionTransitions(t *testing.T) {
	t.Parallel()
	s := newSessionStore(30 * time.Minute)

	if got := s.Get(42); got.Stage != stageIdle {
		t.Fatalf("fresh user must be idle, got %+v", got)
	}

	s.StartDrafting(42)
	if got := s.Get(42); got.Stage != stageDrafting || got.Draft != "" {
		t.Fatalf("expected empty drafting session, got %+v", got)
	}

	s.SetConfirming(42, "wrote docs")
	got := s.Get(42)
	if got.Stage != stageConfirming || got.Draft != "wrote docs" {
		t.Fatalf("unexpected confirming session: %+v", got)
	}

	// A newer draft replaces the pending one.
	s.SetConfirming(42, "reviewed PR")
	if got := s.Get(42); got.Draft != "reviewed PR" {
		t.Fatalf("expected new draft to win, got %q", got.Draft)
	}

	s.Reset(42)
	if got := s.Get(42); got.Stage != stageIdle {
		t.Fatalf("reset must return the user to idle, got %+v", got)
	}
}

func TestSessionIsolationPerUser(t *testing.T) {
	t.Parallel()
	s := newSessionStore(30 * time.Minute)

	s.SetConfirming(42, "alice draft")
	if got := s.Get(7); got.Stage != stageIdle {
		t.Fatalf("another user's session leaked: %+v", got)
	}
}

func TestSessionExpiry(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	s := newSessionStore(30 * time.Minute)
	s.now = func() time.Time { return current }

	s.SetConfirming(42, "wrote docs")

	current = current.Add(29 * time.Minute)
	if got := s.Get(42); got.Stage != stageConfirming {
		t.Fatalf("session expired too early: %+v", got)
	}

	current = current.Add(2 * time.Minute)
	if got := s.Get(42); got.Stage != stageIdle {
		t.Fatalf("expired session must behave as idle, got %+v", got)
	}
}

func TestSessionCleanup(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	s := newSessionStore(30 * time.Minute)
	s.now = func() time.Time { return current }

	s.StartDrafting(42)
	s.StartDrafting(7)

	current = current.Add(time.Hour)
	s.StartDrafting(99)
	s.Cleanup()

	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.sessions) != 1 {
		t.Fatalf("expected only the live session to survive, got %d", len(s.sessions))
	}
	if _, ok := s.sessions[99]; !ok {
		t.Fatalf("cleanup dropped a live session")
	}
}

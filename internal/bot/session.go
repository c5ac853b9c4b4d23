package bot

import (
	"sync"
	"time"
)

// stage is the conversation position of a single user.
type stage int

const (
	stageIdle stage = iota
	stageDrafting
	stageConfirming
)

// session is the ephemeral per-user conversation state. It is never
// persisted; a restart resets every user to idle.
type session struct {
	Stage   stage
	Draft   string
	touched time.Time
}

// sessionStore keeps one session per user with a TTL. An expired
// session behaves exactly like an idle one.
type sessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[int64]*session
	now      func() time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		sessions: make(map[int64]*session),
		now:      time.Now,
	}
}

// Get returns the user's live session, or an idle one if none exists
// or the stored one expired. Expired sessions are dropped on access.
func (s *sessionStore) Get(userID int64) session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return session{Stage: stageIdle}
	}
	if s.now().Sub(sess.touched) > s.ttl {
		delete(s.sessions, userID)
		return session{Stage: stageIdle}
	}
	return *sess
}

// StartDrafting moves the user into the drafting stage, discarding any
// previous draft.
func (s *sessionStore) StartDrafting(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &session{
		Stage:   stageDrafting,
		touched: s.now(),
	}
}

// SetConfirming records the draft text and waits for an explicit
// confirm or cancel. A newer draft replaces the previous one.
func (s *sessionStore) SetConfirming(userID int64, draft string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &session{
		Stage:   stageConfirming,
		Draft:   draft,
		touched: s.now(),
	}
}

// Reset returns the user to idle and discards any draft.
func (s *sessionStore) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Cleanup drops every expired session. Called from the scheduler so
// abandoned drafts do not accumulate for the lifetime of the process.
func (s *sessionStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, sess := range s.sessions {
		if now.Sub(sess.touched) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

package bot

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Callback verbs. The wire format is "verb:token"; everything the
// action needs beyond the verb lives server-side in the registry, so
// callback data never carries report text or usernames.
const (
	verbConfirm = "confirm"
	verbCancel  = "cancel"
	verbAppend  = "append"
	verbReplace = "replace"
	verbUser    = "user"
	verbDate    = "date"
	verbRemind  = "remind"
)

// action is the structured request a callback token resolves to.
type action struct {
	Verb   string
	UserID int64  // subject user for lookup verbs
	Date   string // YYYY-MM-DD for date verbs
	Value  string // HH:MM for remind verbs
	added  time.Time
}

// callbackRegistry maps opaque tokens to actions. Tokens expire so the
// map does not grow with every keyboard ever sent.
type callbackRegistry struct {
	mu      sync.Mutex
	ttl     time.Duration
	actions map[string]action
	now     func() time.Time
}

func newCallbackRegistry(ttl time.Duration) *callbackRegistry {
	return &callbackRegistry{
		ttl:     ttl,
		actions: make(map[string]action),
		now:     time.Now,
	}
}

// Put registers an action and returns the callback data for it.
func (r *callbackRegistry) Put(a action) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for token, act := range r.actions {
		if now.Sub(act.added) > r.ttl {
			delete(r.actions, token)
		}
	}

	token := uuid.NewString()
	a.added = now
	r.actions[token] = a
	return a.Verb + ":" + token
}

// Resolve looks up callback data and returns the action it was
// registered with. Malformed, unknown, or expired data resolves to
// nothing; the token stays valid so a keyboard can be pressed again.
func (r *callbackRegistry) Resolve(data string) (action, bool) {
	verb, token, ok := strings.Cut(data, ":")
	if !ok || verb == "" || token == "" {
		return action{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.actions[token]
	if !ok || a.Verb != verb {
		return action{}, false
	}
	if r.now().Sub(a.added) > r.ttl {
		delete(r.actions, token)
		return action{}, false
	}
	return a, true
}

package bot

import (
	"strings"
	"testing"
	"time"
)

func TestCallbackRoundTrip(t *testing.T) {
	t.Parallel()
	r := newCallbackRegistry(time.Hour)

	data := r.Put(action{Verb: verbDate, UserID: 42, Date: "2026-08-31"})
	if !strings.HasPrefix(data, "date:") {
		t.Fatalf("unexpected callback data %q", data)
	}
	if len(data) > 64 {
		t.Fatalf("callback data exceeds the transport limit: %d bytes", len(data))
	}

	act, ok := r.Resolve(data)
	if !ok {
		t.Fatalf("token did not resolve")
	}
	if act.Verb != verbDate || act.UserID != 42 || act.Date != "2026-08-31" {
		t.Fatalf("unexpected action: %+v", act)
	}

	// Tokens stay valid for repeated presses.
	if _, ok := r.Resolve(data); !ok {
		t.Fatalf("token must survive a second press")
	}
}

func TestCallbackDataCarriesNoPayload(t *testing.T) {
	t.Parallel()
	r := newCallbackRegistry(time.Hour)

	text := "a very long report text with a : delimiter inside"
	data := r.Put(action{Verb: verbUser, UserID: 42, Value: text})
	if strings.Contains(data, "delimiter") || strings.Contains(data, "42") {
		t.Fatalf("callback data must stay opaque, got %q", data)
	}
}

func TestCallbackRejectsMalformedData(t *testing.T) {
	t.Parallel()
	r := newCallbackRegistry(time.Hour)
	data := r.Put(action{Verb: verbConfirm})
	token := strings.TrimPrefix(data, "confirm:")

	for _, bad := range []string{"", "confirm", "confirm:", ":token", "confirm:unknown", "cancel:" + token} {
		if _, ok := r.Resolve(bad); ok {
			t.Fatalf("resolved malformed data %q", bad)
		}
	}
}

func TestCallbackExpiry(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	r := newCallbackRegistry(time.Hour)
	r.now = func() time.Time { return current }

	data := r.Put(action{Verb: verbConfirm})

	current = current.Add(59 * time.Minute)
	if _, ok := r.Resolve(data); !ok {
		t.Fatalf("token expired too early")
	}

	current = current.Add(2 * time.Minute)
	if _, ok := r.Resolve(data); ok {
		t.Fatalf("expired token must not resolve")
	}
}

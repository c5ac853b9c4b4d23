package bot

import (
	"testing"
	"time"
)

func TestSweepRemindersMatchesExactMinute(t *testing.T) {
	t.Parallel()
	b, api, st := newTestBot(t)
	b.now = func() time.Time {
		return time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)
	}

	if err := st.SetReminder(42, "09:00"); err != nil {
		t.Fatalf("set reminder: %v", err)
	}
	if err := st.SetReminder(7, "09:01"); err != nil {
		t.Fatalf("set reminder: %v", err)
	}

	b.sweepReminders()

	if len(api.messages) != 1 {
		t.Fatalf("expected one prompt, got %d", len(api.messages))
	}
	if api.messages[0].ChatID != 42 {
		t.Fatalf("prompt went to %d, want 42", api.messages[0].ChatID)
	}
}

func TestBroadcastSkipsFailedRecipients(t *testing.T) {
	t.Parallel()
	b, api, st := newTestBot(t)
	b.now = func() time.Time {
		return time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)
	}

	if err := st.SetReminder(7, "09:00"); err != nil {
		t.Fatalf("set reminder: %v", err)
	}
	if err := st.SetReminder(42, "09:00"); err != nil {
		t.Fatalf("set reminder: %v", err)
	}
	api.failChats[7] = true

	b.sweepReminders()

	if len(api.messages) != 1 || api.messages[0].ChatID != 42 {
		t.Fatalf("a blocked user must not stop delivery to the rest, got %+v", api.messages)
	}
}

func TestDailyPromptsExcludeCustomReminders(t *testing.T) {
	t.Parallel()
	b, api, st := newTestBot(t)

	if err := st.SaveReport(42, "alice", b.today(), "text"); err != nil {
		t.Fatalf("seed report: %v", err)
	}
	if err := st.SaveReport(7, "bob", b.today(), "text"); err != nil {
		t.Fatalf("seed report: %v", err)
	}
	if err := st.SetReminder(42, "09:00"); err != nil {
		t.Fatalf("set reminder: %v", err)
	}

	b.sendDailyPrompts()

	if len(api.messages) != 1 {
		t.Fatalf("expected one prompt, got %d", len(api.messages))
	}
	if api.messages[0].ChatID != 7 {
		t.Fatalf("prompt went to %d, want 7", api.messages[0].ChatID)
	}
}

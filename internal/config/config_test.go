package config

import (
	"testing"
	"time"
)

func TestLoadRequiresTokenAndDatabase(t *testing.T) {
	t.Setenv("TOKEN", "")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when TOKEN is missing")
	}

	t.Setenv("TOKEN", "123:abc")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "reports.db")
	t.Setenv("BOT_TIMEZONE", "UTC")
	t.Setenv("PROMPT_HOUR", "")
	t.Setenv("SESSION_TTL_MIN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PromptHour != 18 {
		t.Fatalf("PromptHour = %d, want default 18", cfg.PromptHour)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("SessionTTL = %v, want default 30m", cfg.SessionTTL)
	}
	if cfg.LocalTimezone.String() != "UTC" {
		t.Fatalf("LocalTimezone = %v, want UTC", cfg.LocalTimezone)
	}
}

func TestParseIntEnv(t *testing.T) {
	t.Setenv("PROMPT_HOUR", "9")
	if got := parseIntEnv("PROMPT_HOUR", 18); got != 9 {
		t.Fatalf("parseIntEnv = %d, want 9", got)
	}

	t.Setenv("PROMPT_HOUR", "not-a-number")
	if got := parseIntEnv("PROMPT_HOUR", 18); got != 18 {
		t.Fatalf("parseIntEnv with garbage = %d, want default 18", got)
	}
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	BotToken      string
	DatabaseURL   string
	PromptHour    int
	SessionTTL    time.Duration
	LocalTimezone *time.Location
}

// Load reads configuration values and prepares defaults where applicable.
// TOKEN and DATABASE_URL are required; everything else has a default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("TOKEN")
	if token == "" {
		return nil, fmt.Errorf("config: TOKEN is not set")
	}
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("config: DATABASE_URL is not set")
	}

	timezoneName := getenvDefault("BOT_TIMEZONE", "Europe/Moscow")
	location, err := time.LoadLocation(timezoneName)
	if err != nil {
		log.Printf("config: invalid BOT_TIMEZONE %q, defaulting to system local: %v", timezoneName, err)
		location = time.Local
	}

	return &Config{
		BotToken:      token,
		DatabaseURL:   databaseURL,
		PromptHour:    parseIntEnv("PROMPT_HOUR", 18),
		SessionTTL:    time.Duration(parseIntEnv("SESSION_TTL_MIN", 30)) * time.Minute,
		LocalTimezone: location,
	}, nil
}

func getenvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

// parseIntEnv returns the integer value for an environment variable or the provided default.
func parseIntEnv(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("config: unable to parse %s=%q as int: %v", key, value, err)
		return def
	}
	return parsed
}

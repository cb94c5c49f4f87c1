package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the server.
type Config struct {
	HTTPAddr    string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration

	// Trash retention: soft-deleted tasks older than TrashRetention are
	// purged by a daily sweep at TrashSweepTime (HH:MM). Zero disables
	// the sweep.
	TrashRetention time.Duration
	TrashSweepTime string
}

// Load reads configuration from the environment (and .env, if present)
// with sane defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:       strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTL:       parseHours(strings.TrimSpace(os.Getenv("TOKEN_TTL_HOURS"))),
		TrashRetention: parseDays(strings.TrimSpace(os.Getenv("TRASH_RETENTION_DAYS"))),
		TrashSweepTime: strings.TrimSpace(os.Getenv("TRASH_SWEEP_TIME")),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "tasktrack.db"
	}

	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 24 * time.Hour
	}

	if cfg.TrashSweepTime == "" {
		cfg.TrashSweepTime = "03:00"
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func parseHours(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}

func parseDays(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0
	}
	return time.Duration(days) * 24 * time.Hour
}

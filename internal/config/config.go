package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is read once at startup; the policy thresholds are immutable for
// the process lifetime.
type Config struct {
	ListenAddr  string
	DatabaseURL string

	// DevMode swaps Postgres for the in-memory store.
	DevMode bool

	MinDaysAhead       int
	MaxConsecutiveDays int
	MaxDaysAhead       int
}

func FromEnv() (Config, error) {
	cfg := Config{
		ListenAddr:  getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DevMode:     strings.TrimSpace(os.Getenv("DEV_MODE")) == "1",
	}
	if cfg.DatabaseURL == "" && !cfg.DevMode {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	var err error
	if cfg.MinDaysAhead, err = envInt("MIN_DAYS_AHEAD", 1); err != nil {
		return Config{}, err
	}
	if cfg.MaxConsecutiveDays, err = envInt("MAX_CONSECUTIVE_DAYS", 3); err != nil {
		return Config{}, err
	}
	if cfg.MaxDaysAhead, err = envInt("MAX_DAYS_AHEAD", 30); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envInt(k string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s: must be a non-negative integer", k)
	}
	return n, nil
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

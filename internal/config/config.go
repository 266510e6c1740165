// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration shared by the gateway and the
// alert runner.
type Config struct {
	Port             string
	DatabaseURL      string
	RedisURL         string
	MentorAPIBaseURL string // upstream mentor-search endpoint, e.g. https://api.ngurra.example
	CacheTTLSeconds  int    // gateway page-cache TTL
	AlertIntervalHrs int    // how often the saved-search cron fires
	AlertMaxPages    int    // pagination cap per saved search per run
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	apiBase := os.Getenv("MENTOR_API_BASE_URL")
	if apiBase == "" {
		return nil, fmt.Errorf("MENTOR_API_BASE_URL is required")
	}

	port := os.Getenv("GATEWAY_PORT")
	if port == "" {
		port = "8083"
	}

	cacheTTL := 60
	if s := os.Getenv("CACHE_TTL_SECONDS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("CACHE_TTL_SECONDS must be a non-negative integer, got %q", s)
		}
		cacheTTL = v
	}

	interval := 6
	if s := os.Getenv("ALERT_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("ALERT_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		interval = v
	}

	maxPages := 3
	if s := os.Getenv("ALERT_MAX_PAGES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("ALERT_MAX_PAGES must be a positive integer, got %q", s)
		}
		maxPages = v
	}

	return &Config{
		Port:             port,
		DatabaseURL:      dbURL,
		RedisURL:         redisURL,
		MentorAPIBaseURL: apiBase,
		CacheTTLSeconds:  cacheTTL,
		AlertIntervalHrs: interval,
		AlertMaxPages:    maxPages,
	}, nil
}

package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultHTTPPort        = "5000"
	DefaultJobInterval     = 300000 * time.Millisecond
	DefaultShutdownTimeout = 10000 * time.Millisecond
)

type Config struct {
	HTTPPort        string
	JobInterval     time.Duration
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// LoadConfig reads the configuration through lookup, typically os.LookupEnv.
// Missing or malformed values fall back to their defaults; nothing here fails.
func LoadConfig(lookup func(key string) (string, bool)) Config {
	return Config{
		HTTPPort:        stringOr(lookup, "HTTP_PORT", DefaultHTTPPort),
		JobInterval:     millisOr(lookup, "JOB_INTERVAL_MS", DefaultJobInterval),
		LogLevel:        levelOr(lookup, "LOG_LEVEL", slog.LevelInfo),
		ShutdownTimeout: millisOr(lookup, "SHUTDOWN_TIMEOUT_MS", DefaultShutdownTimeout),
	}
}

// LoadConfigFromEnv is LoadConfig over the process environment.
func LoadConfigFromEnv() Config {
	return LoadConfig(os.LookupEnv)
}

func stringOr(lookup func(string) (string, bool), key, fallback string) string {
	if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

// millisOr accepts only a positive integer count of milliseconds.
func millisOr(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	v, ok := lookup(key)
	if !ok {
		return fallback
	}

	ms, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func levelOr(lookup func(string) (string, bool), key string, fallback slog.Level) slog.Level {
	v, ok := lookup(key)
	if !ok {
		return fallback
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		return fallback
	}
	return level
}

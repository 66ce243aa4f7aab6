package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"orderflow/cmd"

	"github.com/stretchr/testify/assert"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := cmd.LoadConfig(lookupFrom(nil))

	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, 5*time.Minute, cfg.JobInterval)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg := cmd.LoadConfig(lookupFrom(map[string]string{
		"HTTP_PORT":           "8080",
		"JOB_INTERVAL_MS":     "1500",
		"LOG_LEVEL":           "debug",
		"SHUTDOWN_TIMEOUT_MS": "250",
	}))

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 1500*time.Millisecond, cfg.JobInterval)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
}

func TestLoadConfig_InvalidIntervalFallsBack(t *testing.T) {
	for _, v := range []string{"", "abc", "0", "-5", "1.5"} {
		cfg := cmd.LoadConfig(lookupFrom(map[string]string{"JOB_INTERVAL_MS": v}))

		assert.Equal(t, cmd.DefaultJobInterval, cfg.JobInterval, "JOB_INTERVAL_MS=%q", v)
	}
}

func TestLoadConfig_InvalidLogLevelFallsBack(t *testing.T) {
	cfg := cmd.LoadConfig(lookupFrom(map[string]string{"LOG_LEVEL": "verbose"}))

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

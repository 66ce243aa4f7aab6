package jobs

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// fixedInterval activates every d, measured from the previous activation.
type fixedInterval time.Duration

var _ cron.Schedule = fixedInterval(0)

func (s fixedInterval) Next(t time.Time) time.Time {
	return t.Add(time.Duration(s))
}

// cronLogger routes the scheduler's own diagnostics into slog. Per-tick chatter
// (wake, run, skip) goes to debug.
type cronLogger struct {
	logger *slog.Logger
}

var _ cron.Logger = cronLogger{}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

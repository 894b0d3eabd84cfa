package worker

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger sends cron's scheduler messages through slog.
type cronLogger struct {
	logger *slog.Logger
}

var _ cron.Logger = cronLogger{}

func newCronLogger(l *slog.Logger) cronLogger {
	if l == nil {
		l = slog.Default()
	}
	return cronLogger{logger: l.With("component", "cron")}
}

// Info logs scheduler chatter at debug level. Skipped runs are logged at info.
func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	level := slog.LevelDebug
	if msg == "skip" {
		level = slog.LevelInfo
	}
	l.logger.Log(context.Background(), level, "refresher: cron "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("refresher: cron "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}

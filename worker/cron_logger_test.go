package worker

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func TestCronLoggerRoutesSkipsAndPanicsToSlog(t *testing.T) {
	var buf bytes.Buffer
	logger := newCronLogger(bufferLogger(&buf))

	release := make(chan struct{})
	started := make(chan struct{}, 1)
	job := cron.NewChain(cron.SkipIfStillRunning(logger)).Then(cron.FuncJob(func() {
		started <- struct{}{}
		<-release
	}))
	go job.Run()
	<-started
	job.Run() // skipped while the first run holds the slot
	close(release)

	cron.NewChain(cron.Recover(logger)).Then(cron.FuncJob(func() {
		panic(errors.New("boom"))
	})).Run()

	out := buf.String()
	assert.Contains(t, out, "refresher: cron skip")
	assert.Contains(t, out, "component=cron")
	assert.Contains(t, out, "refresher: cron panic")
	assert.Contains(t, out, "boom")
}

func TestCronLoggerDebugChatterHiddenAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newCronLogger(bufferLogger(&buf))
	logger.Info("wake", "now", time.Unix(0, 0).UTC())
	assert.Empty(t, buf.String())
}

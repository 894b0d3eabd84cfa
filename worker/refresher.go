package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newpunch-journalist/internal/model"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// PageFetcher downloads pages 1..pages of a listing.
type PageFetcher interface {
	FetchPages(ctx context.Context, urlTemplate string, pages int) ([][]byte, error)
}

// ThreadExtractor turns listing page bodies into records.
type ThreadExtractor interface {
	ExtractPages(bodies [][]byte) ([]model.ThreadRecord, error)
}

// TableWriter replaces table contents.
type TableWriter interface {
	ClearAll(ctx context.Context, table string) error
	PutAll(ctx context.Context, table string, records []model.ThreadRecord) error
}

// Target is one category to refresh.
type Target struct {
	Category    model.Category
	URLTemplate string
	Table       string
}

// Refresher replaces every target's table with a fresh scrape of its
// listing pages. Between ClearAll and PutAll a table is empty; readers may
// observe that.
type Refresher struct {
	Fetcher      PageFetcher
	Extractor    ThreadExtractor
	Store        TableWriter
	Targets      []Target
	Pages        int
	Schedule     string // cron spec
	RunAtStartup bool
	Timeout      time.Duration // per RunOnce
}

// Start runs RunOnce on the cron schedule until ctx is cancelled. A run that
// is still going when the next one is due is skipped.
func (w *Refresher) Start(ctx context.Context) error {
	schedule := w.Schedule
	if schedule == "" {
		schedule = "@every 10m"
	}
	logger := newCronLogger(slog.Default())
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := c.AddFunc(schedule, func() { w.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("refresher: invalid schedule %q: %w", schedule, err)
	}
	if w.RunAtStartup {
		w.RunOnce(ctx)
	}
	c.Start()
	slog.Info("refresher: scheduled", "schedule", schedule, "targets", len(w.Targets))

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

// RunOnce refreshes all targets in order and reports success. The first
// failing target aborts the run; later targets are left untouched.
func (w *Refresher) RunOnce(ctx context.Context) bool {
	if w.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.Timeout)
		defer cancel()
	}
	runID := uuid.NewString()
	start := time.Now()
	slog.Info("refresher: run started", "run", runID, "targets", len(w.Targets), "pages", w.Pages)

	counts := make(map[model.Category]int, len(w.Targets))
	for _, t := range w.Targets {
		n, err := w.RefreshTarget(ctx, t)
		if err != nil {
			slog.Error("refresher: run failed", "run", runID, "category", t.Category, "table", t.Table, "error", err)
			return false
		}
		counts[t.Category] = n
	}
	slog.Info("refresher: run completed", "run", runID, "stored", counts, "elapsed", time.Since(start).String())
	return true
}

// RefreshTarget fetches, extracts, clears and repopulates one table, in
// that order, and returns the number of records written.
func (w *Refresher) RefreshTarget(ctx context.Context, t Target) (int, error) {
	bodies, err := w.Fetcher.FetchPages(ctx, t.URLTemplate, w.Pages)
	if err != nil {
		return 0, err
	}
	threads, err := w.Extractor.ExtractPages(bodies)
	if err != nil {
		return 0, err
	}
	slog.Info("refresher: extracted", "category", t.Category, "pages", len(bodies), "threads", len(threads))
	if err := w.Store.ClearAll(ctx, t.Table); err != nil {
		return 0, err
	}
	if err := w.Store.PutAll(ctx, t.Table, threads); err != nil {
		return 0, err
	}
	slog.Info("refresher: stored", "category", t.Category, "table", t.Table, "threads", len(threads))
	return len(threads), nil
}

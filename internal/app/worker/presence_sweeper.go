package worker

import (
	"context"
	"time"

	"problem_app/internal/app/presence"
	"problem_app/internal/logger"
	"problem_app/internal/platform/metrics"
)

const sweepLockKey = "locks:presence_sweep"

// PresenceSweeper periodically removes presence entries older than the
// online window.
type PresenceSweeper struct {
	tracker  presence.Tracker
	locker   Locker
	window   time.Duration
	interval time.Duration
	log      *logger.Logger
	now      func() time.Time
}

func NewPresenceSweeper(tracker presence.Tracker, locker Locker, window, interval time.Duration, log *logger.Logger) *PresenceSweeper {
	return &PresenceSweeper{
		tracker:  tracker,
		locker:   locker,
		window:   window,
		interval: interval,
		log:      log,
		now:      time.Now,
	}
}

// Start blocks until ctx is cancelled.
func (w *PresenceSweeper) Start(ctx context.Context) {
	w.log.Info("presence sweeper started", "interval", w.interval, "window", w.window)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("presence sweeper stopping")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep runs one pruning pass and returns the number of removed entries.
func (w *PresenceSweeper) Sweep(ctx context.Context) int64 {
	release, ok, err := w.locker.Acquire(ctx, sweepLockKey, w.interval)
	if err != nil {
		w.log.Error("presence sweep: lock failed", "error", err)
		return 0
	}
	if !ok {
		w.log.Debug("presence sweep: another instance holds the lock")
		return 0
	}
	defer release()

	cutoff := w.now().Add(-w.window)
	n, err := w.tracker.Prune(ctx, cutoff)
	if err != nil {
		w.log.Error("presence sweep failed", "error", err)
		return 0
	}
	if n > 0 {
		metrics.PresencePrunedTotal.Add(float64(n))
		w.log.Debug("presence sweep", "pruned", n, "cutoff", cutoff)
	}
	return n
}

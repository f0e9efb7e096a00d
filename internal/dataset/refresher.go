package dataset

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/brandpulse/brandpulse/pkg/logging"
)

// Refresher reloads the dataset snapshot on a fixed interval so a
// long-running server picks up re-exported files. Each reload is
// fail-soft per brand, like the initial load.
type Refresher struct {
	loader   *Loader
	store    *Store
	interval time.Duration
	logger   *zap.Logger
}

// NewRefresher creates a refresher; interval 0 disables it
func NewRefresher(loader *Loader, store *Store, interval time.Duration) *Refresher {
	return &Refresher{
		loader:   loader,
		store:    store,
		interval: interval,
		logger:   logging.GetLogger().With(zap.String("component", "refresher")),
	}
}

// Run loops until the context is cancelled
func (r *Refresher) Run(ctx context.Context) error {
	if r.interval <= 0 {
		r.logger.Info("Dataset refresh disabled")
		return nil
	}

	r.logger.Info("Starting dataset refresher", zap.Duration("interval", r.interval))

	for {
		if !r.wait(ctx) {
			return ctx.Err()
		}

		start := time.Now()
		snap := r.loader.Load(ctx)
		r.store.Swap(snap)

		r.logger.Debug("Snapshot refreshed",
			zap.Duration("took", time.Since(start)),
			zap.Time("loaded_at", snap.LoadedAt))
	}
}

// wait waits one interval or until the context is cancelled
func (r *Refresher) wait(ctx context.Context) bool {
	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vadim/engage-metric/internal/domain/engagement/entity"
)

// DashboardSource produces a fresh dashboard payload
type DashboardSource interface {
	Dashboard(ctx context.Context) (*entity.Dashboard, error)
}

// Refresher periodically recomputes the dashboard payload and keeps the
// latest snapshot in memory, so UI polls hit warm data instead of two sheet
// reads each. A snapshot is immutable once stored.
type Refresher struct {
	source   DashboardSource
	interval time.Duration
	logger   *slog.Logger

	mu         sync.RWMutex
	snapshot   *entity.Dashboard
	snapshotID uuid.UUID

	stopCh  chan struct{}
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
	runMu   sync.Mutex
}

// NewRefresher creates a dashboard snapshot refresher
func NewRefresher(source DashboardSource, interval time.Duration, logger *slog.Logger) *Refresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &Refresher{
		source:   source,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Start starts the refresher loop
func (r *Refresher) Start(ctx context.Context) {
	r.runMu.Lock()
	if r.running {
		r.runMu.Unlock()
		return
	}
	r.running = true

	// Create a cancellable context for in-flight refreshes
	ctx, r.cancel = context.WithCancel(ctx)
	r.runMu.Unlock()

	r.logger.Info("dashboard refresher started", "interval", r.interval)

	r.wg.Add(1)
	go r.run(ctx)
}

// Stop stops the refresher
func (r *Refresher) Stop() {
	r.runMu.Lock()
	if !r.running {
		r.runMu.Unlock()
		return
	}
	r.running = false
	cancel := r.cancel
	r.runMu.Unlock()

	if cancel != nil {
		cancel()
	}

	close(r.stopCh)
	r.wg.Wait()
	r.logger.Info("dashboard refresher stopped")
}

// run is the main refresher loop
func (r *Refresher) run(ctx context.Context) {
	defer r.wg.Done()

	// Warm the snapshot immediately on start
	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.refresh(ctx)
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// refresh recomputes the dashboard and swaps the snapshot. A failed refresh
// keeps the previous snapshot in place.
func (r *Refresher) refresh(ctx context.Context) {
	dashboard, err := r.source.Dashboard(ctx)
	if err != nil {
		r.logger.Error("dashboard refresh failed", "error", err)
		return
	}

	id := uuid.New()
	r.mu.Lock()
	r.snapshot = dashboard
	r.snapshotID = id
	r.mu.Unlock()

	r.logger.Debug("dashboard snapshot refreshed",
		"snapshot_id", id,
		"total_interactions", dashboard.Totals.Total)
}

// Snapshot returns the current snapshot, nil before the first refresh
func (r *Refresher) Snapshot() *entity.Dashboard {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// Dashboard serves the warm snapshot, falling back to a direct aggregation
// pass before the first refresh completes. It implements DashboardSource so
// the HTTP handler can sit in front of either path.
func (r *Refresher) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	if snapshot := r.Snapshot(); snapshot != nil {
		return snapshot, nil
	}
	return r.source.Dashboard(ctx)
}

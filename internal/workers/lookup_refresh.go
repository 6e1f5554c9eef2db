package workers

import (
	"context"
	"sync"
	"time"

	"github.com/foodblog/go-food-blog/internal/logger"
)

type lookupRefreshWorker struct {
	ctx      context.Context
	lookups  LookupSource
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewLookupRefreshWorker creates a worker that refreshes the recipe form
// lookups on a ticker. If interval is zero or negative it defaults to
// 15 minutes. The worker is idle until Run is called.
func NewLookupRefreshWorker(ctx context.Context, lookups LookupSource, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &lookupRefreshWorker{ctx: ctx, lookups: lookups, interval: interval, logger: log}
}

// Run implements [Worker]. It stops any previously running refresh loop,
// then launches a background goroutine that refetches the lookups every
// interval. The goroutine exits when the parent context is cancelled or
// Stop is called. Fetch failures are logged and the loop keeps going; the
// next tick retries.
func (w *lookupRefreshWorker) Run() {
	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(w.ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				if _, err := w.lookups.FormLookups(workerCtx); err != nil {
					w.logger.Err(err).Str("func", "lookupRefreshWorker.Run").Msg("lookup refresh failed")
				}
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// worker is not running (no-op in that case).
func (w *lookupRefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

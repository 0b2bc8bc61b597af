package sweep

import (
	"context"
	"log/slog"
	"time"

	"github.com/statdle/statdle/internal/dependencies/clock"
	"github.com/statdle/statdle/internal/storage"
)

// Sweeper periodically removes expired sessions from the store so the
// session map cannot grow without bound. Stores that expire server-side
// (Redis) make the purge a cheap no-op.
type Sweeper struct {
	store    storage.Store
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger
}

// New creates a sweeper that purges on the given interval
func New(store storage.Store, clk clock.Clock, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps until ctx is cancelled. It blocks; callers run it in its own
// goroutine and cancel the context at shutdown.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session sweeper stopped")
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce runs a single purge pass
func (s *Sweeper) SweepOnce(ctx context.Context) {
	removed, err := s.store.PurgeExpired(ctx, s.clock.Now())
	if err != nil {
		s.logger.Error("session sweep failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		s.logger.Info("expired sessions purged", slog.Int("removed", removed))
	}
}

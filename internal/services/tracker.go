package services

import (
	"context"
	"errors"
	"time"

	"github.com/coder/quartz"

	"playtrack/internal/logging"
	"playtrack/internal/ports"
)

// Tracker drives the reconciliation loop. A single goroutine owns every
// session write: each cycle reads presence for all tracked players and runs
// them through the Reconciler one at a time, so cycles never overlap and
// session state needs no locking.
type Tracker struct {
	reconciler *Reconciler
	directory  ports.PlayerDirectory
	presence   ports.PresenceSource
	clock      quartz.Clock

	interval     time.Duration
	refreshEvery time.Duration
	lastRefresh  time.Time
}

// NewTracker creates a Tracker that reconciles every interval and refreshes
// the player directory every refreshEvery. A zero refreshEvery disables
// directory refresh.
func NewTracker(
	reconciler *Reconciler,
	directory ports.PlayerDirectory,
	presence ports.PresenceSource,
	clock quartz.Clock,
	interval time.Duration,
	refreshEvery time.Duration,
) *Tracker {
	return &Tracker{
		reconciler:   reconciler,
		directory:    directory,
		presence:     presence,
		clock:        clock,
		interval:     interval,
		refreshEvery: refreshEvery,
	}
}

// Run blocks until ctx is cancelled. The first cycle runs immediately so a
// fresh start reconciles whatever is already happening instead of waiting
// out the first tick.
func (t *Tracker) Run(ctx context.Context) error {
	logging.Logger.Info("tracker started",
		"interval", t.interval,
		"directory_refresh", t.refreshEvery)

	t.lastRefresh = t.clock.Now().UTC()
	t.cycle(ctx)

	waiter := t.clock.TickerFunc(ctx, t.interval, func() error {
		t.cycle(ctx)
		return nil
	}, "tracker")

	if err := waiter.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logging.Logger.Info("tracker stopped")
	return nil
}

// cycle reconciles every tracked player once. A failing player is logged
// and skipped; the next cycle is the retry path.
func (t *Tracker) cycle(ctx context.Context) {
	now := t.clock.Now().UTC()

	if t.refreshEvery > 0 && now.Sub(t.lastRefresh) >= t.refreshEvery {
		if err := t.directory.Refresh(ctx); err != nil {
			logging.Logger.Warn("player directory refresh failed", "error", err)
		} else {
			t.lastRefresh = now
		}
	}

	players, err := t.directory.Players(ctx)
	if err != nil {
		logging.Logger.Error("failed to list tracked players", "error", err)
		return
	}

	for _, player := range players {
		observed, err := t.presence.Observed(ctx, player.ID)
		if err != nil {
			logging.Logger.Warn("presence read failed",
				"player", player.ID,
				"error", err)
			continue
		}

		if err := t.reconciler.Reconcile(ctx, player, observed, now); err != nil {
			logging.Logger.Error("reconcile failed",
				"player", player.ID,
				"error", err)
		}
	}
}

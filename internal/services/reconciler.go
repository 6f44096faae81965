package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"playtrack/internal/domain"
	"playtrack/internal/logging"
	"playtrack/internal/ports"
)

// Reconciler folds presence observations into durable session records. It
// keeps at most one active session per (player, activity) pair: activities
// that disappeared are closed, newly observed ones are opened, and anything
// unchanged is left alone, so running it twice with the same input is a
// no-op.
type Reconciler struct {
	store ports.SessionStore
}

// NewReconciler creates a new Reconciler
func NewReconciler(store ports.SessionStore) *Reconciler {
	return &Reconciler{store: store}
}

// Reconcile aligns the player's session records with the observed set of
// activity labels at time now. Closing happens before opening, and the open
// phase re-reads the store so every decision is made against persisted
// state. Labels that normalize to empty are ignored. A persistence failure
// aborts the rest of this player's reconcile; the next cycle retries.
func (r *Reconciler) Reconcile(ctx context.Context, player domain.Player, observed map[string]struct{}, now time.Time) error {
	want := make(map[string]struct{}, len(observed))
	for label := range observed {
		if norm := domain.NormalizeActivity(label); norm != "" {
			want[norm] = struct{}{}
		}
	}

	// Close phase: active records whose activity is no longer observed.
	active, err := r.store.FindActive(ctx, player.ID)
	if err != nil {
		return fmt.Errorf("failed to load active sessions: %w", err)
	}

	for _, session := range active {
		if _, still := want[session.Activity]; still {
			continue
		}

		session.Duration += now.Sub(session.StartedAt)
		session.Active = false
		if err := r.store.Save(ctx, session); err != nil {
			return fmt.Errorf("failed to close session %s: %w", session.ID, err)
		}

		logging.Logger.Info("session closed",
			"player", player.ID,
			"activity", session.Activity,
			"duration", session.Duration)
	}

	// Open phase: compare against what is persisted now, not the snapshot
	// taken before closing.
	active, err = r.store.FindActive(ctx, player.ID)
	if err != nil {
		return fmt.Errorf("failed to reload active sessions: %w", err)
	}

	open := make(map[string]struct{}, len(active))
	for _, session := range active {
		open[session.Activity] = struct{}{}
	}

	for label := range want {
		if _, exists := open[label]; exists {
			continue
		}

		session := domain.Session{
			ID:          uuid.NewString(),
			PlayerID:    player.ID,
			DisplayName: player.DisplayName,
			Activity:    label,
			StartedAt:   now,
			Active:      true,
		}
		if err := r.store.Save(ctx, session); err != nil {
			return fmt.Errorf("failed to open session for %q: %w", label, err)
		}

		logging.Logger.Info("session opened",
			"player", player.ID,
			"activity", label)
	}

	return nil
}

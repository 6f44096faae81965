package presence

import (
	"context"
	"sync"

	"playtrack/internal/domain"
	"playtrack/internal/ports"
)

// Board is a push-fed presence source. Callers report activity starts and
// stops and the board keeps the current observation set per player.
type Board struct {
	mu      sync.RWMutex
	playing map[string]map[string]struct{}
}

// Compile-time interface verification
var _ ports.PresenceSource = (*Board)(nil)

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{playing: make(map[string]map[string]struct{})}
}

// SetPlaying records that playerID is currently in activity. Blank labels
// are ignored.
func (b *Board) SetPlaying(playerID, activity string) {
	activity = domain.NormalizeActivity(activity)
	if activity == "" {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.playing[playerID]
	if !ok {
		set = make(map[string]struct{})
		b.playing[playerID] = set
	}
	set[activity] = struct{}{}
}

// ClearPlaying records that playerID stopped activity.
func (b *Board) ClearPlaying(playerID, activity string) {
	activity = domain.NormalizeActivity(activity)
	if activity == "" {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.playing[playerID]
	if !ok {
		return
	}

	delete(set, activity)
	if len(set) == 0 {
		delete(b.playing, playerID)
	}
}

// Observed returns a copy of the current observation set for playerID.
func (b *Board) Observed(_ context.Context, playerID string) (map[string]struct{}, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	observed := make(map[string]struct{}, len(b.playing[playerID]))
	for activity := range b.playing[playerID] {
		observed[activity] = struct{}{}
	}

	return observed, nil
}

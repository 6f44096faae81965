package directory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"playtrack/internal/domain"
	"playtrack/internal/logging"
	"playtrack/internal/ports"
)

// StaticDirectory is a PlayerDirectory backed by a loader function, usually
// the settings file. Refresh re-runs the loader and swaps the roster.
type StaticDirectory struct {
	mu      sync.RWMutex
	load    func() ([]domain.Player, error)
	players []domain.Player
	names   map[string]string
}

// Compile-time interface verification
var _ ports.PlayerDirectory = (*StaticDirectory)(nil)

// NewStaticDirectory creates a directory that loads its roster via load.
// The roster is empty until the first Refresh.
func NewStaticDirectory(load func() ([]domain.Player, error)) *StaticDirectory {
	return &StaticDirectory{
		load:  load,
		names: make(map[string]string),
	}
}

// Refresh reloads the roster. On loader failure the previous roster is kept.
func (d *StaticDirectory) Refresh(_ context.Context) error {
	loaded, err := d.load()
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	players := make([]domain.Player, 0, len(loaded))
	names := make(map[string]string, len(loaded))
	for _, player := range loaded {
		player.ID = strings.TrimSpace(player.ID)
		if player.ID == "" {
			logging.Logger.Warn("Skipping player with empty id")
			continue
		}
		if _, ok := names[player.ID]; ok {
			logging.Logger.Warn("Skipping duplicate player", "player_id", player.ID)
			continue
		}

		player.DisplayName = strings.TrimSpace(player.DisplayName)
		if player.DisplayName == "" {
			player.DisplayName = player.ID
		}

		players = append(players, player)
		names[player.ID] = player.DisplayName
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.players = players
	d.names = names

	return nil
}

// Players returns the current roster in settings order.
func (d *StaticDirectory) Players(_ context.Context) ([]domain.Player, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	players := make([]domain.Player, len(d.players))
	copy(players, d.players)

	return players, nil
}

// DisplayName resolves playerID to its display name. Unknown players get
// domain.ErrPlayerUnknown.
func (d *StaticDirectory) DisplayName(playerID string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	name, ok := d.names[playerID]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrPlayerUnknown, playerID)
	}

	return name, nil
}

package ports

import (
	"context"

	"playtrack/internal/domain"
)

// PlayerDirectory resolves which players are tracked and what to call them.
// Refresh re-reads the backing source so membership and name changes are
// picked up without restarting the tracker.
type PlayerDirectory interface {
	Players(ctx context.Context) ([]domain.Player, error)
	DisplayName(playerID string) (string, error)
	Refresh(ctx context.Context) error
}

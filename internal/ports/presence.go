package ports

import "context"

// PresenceSource reports the set of activity labels a player is engaged in
// right now. Implementations may scan an external system on each call or
// serve a snapshot maintained from pushed events; the reconciler treats both
// the same way.
type PresenceSource interface {
	Observed(ctx context.Context, playerID string) (map[string]struct{}, error)
}

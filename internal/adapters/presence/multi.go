package presence

import (
	"context"

	"playtrack/internal/ports"
)

// Multi merges the observation sets of several presence sources.
type Multi struct {
	sources []ports.PresenceSource
}

// Compile-time interface verification
var _ ports.PresenceSource = (*Multi)(nil)

// NewMulti creates a presence source that unions all given sources.
func NewMulti(sources ...ports.PresenceSource) *Multi {
	return &Multi{sources: sources}
}

// Observed returns the union of the observation sets of all sources. Any
// source error aborts the merge.
func (m *Multi) Observed(ctx context.Context, playerID string) (map[string]struct{}, error) {
	observed := make(map[string]struct{})
	for _, source := range m.sources {
		set, err := source.Observed(ctx, playerID)
		if err != nil {
			return nil, err
		}

		for activity := range set {
			observed[activity] = struct{}{}
		}
	}

	return observed, nil
}

package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/coder/quartz"

	"playtrack/internal/domain"
	"playtrack/internal/ports"
)

// LeaderboardEntry pairs a grouping key with its accumulated play time.
type LeaderboardEntry struct {
	Key   string
	Total time.Duration
}

// ActiveRow is one line of the live session table.
type ActiveRow struct {
	PlayerID    string
	DisplayName string
	Activity    string
	StartedAt   time.Time
	Elapsed     time.Duration
}

// TimelineEntry is one session rendered as a plain interval.
type TimelineEntry struct {
	PlayerID    string
	DisplayName string
	Activity    string
	Start       time.Time
	End         time.Time
}

// Totals sums the effective elapsed time of sessions grouped by the key
// keyOf extracts. Active sessions count their live stretch up to now.
func Totals(sessions []domain.Session, keyOf func(domain.Session) string, now time.Time) map[string]time.Duration {
	totals := make(map[string]time.Duration)
	for _, s := range sessions {
		totals[keyOf(s)] += s.DurationAt(now)
	}
	return totals
}

// Leaderboard ranks totals by duration descending. Ties order by key
// ascending so equal totals always render the same way.
func Leaderboard(totals map[string]time.Duration) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(totals))
	for key, total := range totals {
		entries = append(entries, LeaderboardEntry{Key: key, Total: total})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].Key < entries[j].Key
	})

	return entries
}

// StatsService computes read-side views over the session store. Every call
// loads a fresh snapshot; nothing is cached between requests.
type StatsService struct {
	store ports.SessionReader
	clock quartz.Clock
}

// NewStatsService creates a new StatsService
func NewStatsService(store ports.SessionReader, clock quartz.Clock) *StatsService {
	return &StatsService{
		store: store,
		clock: clock,
	}
}

// ActiveSessions lists currently open sessions with their live elapsed
// time, longest running first.
func (s *StatsService) ActiveSessions(ctx context.Context) ([]ActiveRow, error) {
	sessions, err := s.store.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active sessions: %w", err)
	}

	now := s.clock.Now().UTC()
	rows := make([]ActiveRow, 0, len(sessions))
	for _, session := range sessions {
		rows = append(rows, ActiveRow{
			PlayerID:    session.PlayerID,
			DisplayName: session.DisplayName,
			Activity:    session.Activity,
			StartedAt:   session.StartedAt,
			Elapsed:     session.DurationAt(now),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Elapsed != rows[j].Elapsed {
			return rows[i].Elapsed > rows[j].Elapsed
		}
		return rows[i].DisplayName < rows[j].DisplayName
	})

	return rows, nil
}

// ActivityLeaderboard ranks activities by total play time across all
// players, live sessions included.
func (s *StatsService) ActivityLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	sessions, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	now := s.clock.Now().UTC()
	totals := Totals(sessions, func(sess domain.Session) string { return sess.Activity }, now)

	return Leaderboard(totals), nil
}

// PlayerLeaderboard ranks players by total play time across all activities.
// Sessions are keyed by display name, falling back to the player ID when a
// record carries none.
func (s *StatsService) PlayerLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	sessions, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	now := s.clock.Now().UTC()
	totals := Totals(sessions, func(sess domain.Session) string {
		if sess.DisplayName != "" {
			return sess.DisplayName
		}
		return sess.PlayerID
	}, now)

	return Leaderboard(totals), nil
}

// Distribution reports total whole minutes of play per activity.
func (s *StatsService) Distribution(ctx context.Context) (map[string]int64, error) {
	sessions, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	now := s.clock.Now().UTC()
	totals := Totals(sessions, func(sess domain.Session) string { return sess.Activity }, now)

	dist := make(map[string]int64, len(totals))
	for activity, total := range totals {
		dist[activity] = int64(total / time.Minute)
	}

	return dist, nil
}

// Concurrency computes the bucketed concurrency series over every recorded
// session. bucketSeconds is clamped to the supported range; pass 0 for the
// default width.
func (s *StatsService) Concurrency(ctx context.Context, bucketSeconds int) ([]ConcurrencyPoint, error) {
	sessions, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	return ConcurrencySeries(sessions, ClampBucket(bucketSeconds), s.clock.Now().UTC()), nil
}

// Timeline lists every recorded session as a plain interval, active ones
// ending at now. Records that never got a start timestamp are dropped.
func (s *StatsService) Timeline(ctx context.Context) ([]TimelineEntry, error) {
	sessions, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	now := s.clock.Now().UTC()
	entries := make([]TimelineEntry, 0, len(sessions))
	for _, session := range sessions {
		if session.StartedAt.IsZero() {
			continue
		}

		iv := session.Interval(now)
		entries = append(entries, TimelineEntry{
			PlayerID:    session.PlayerID,
			DisplayName: session.DisplayName,
			Activity:    session.Activity,
			Start:       iv.Start,
			End:         iv.End,
		})
	}

	return entries, nil
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"playtrack/internal/domain"
	portsmocks "playtrack/internal/ports/mocks"
)

func closedFor(player, name, activity string, startedAt time.Time, played time.Duration) domain.Session {
	return domain.Session{
		ID:          player + "-" + activity,
		PlayerID:    player,
		DisplayName: name,
		Activity:    activity,
		StartedAt:   startedAt,
		Duration:    played,
		Active:      false,
	}
}

func TestTotals_GroupsByKey(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sessions := []domain.Session{
		closedFor("p1", "Alice", "Minecraft", now.Add(-3*time.Hour), time.Hour),
		closedFor("p2", "Bob", "Minecraft", now.Add(-2*time.Hour), 30*time.Minute),
		closedFor("p1", "Alice", "Valheim", now.Add(-time.Hour), 15*time.Minute),
	}

	totals := Totals(sessions, func(s domain.Session) string { return s.Activity }, now)

	assert.Equal(t, 90*time.Minute, totals["Minecraft"])
	assert.Equal(t, 15*time.Minute, totals["Valheim"])
}

func TestTotals_IncludesLiveElapsed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sessions := []domain.Session{
		closedFor("p1", "Alice", "Minecraft", now.Add(-3*time.Hour), time.Hour),
		{
			ID:        "live",
			PlayerID:  "p1",
			Activity:  "Minecraft",
			StartedAt: now.Add(-20 * time.Minute),
			Active:    true,
		},
	}

	totals := Totals(sessions, func(s domain.Session) string { return s.Activity }, now)

	assert.Equal(t, 80*time.Minute, totals["Minecraft"])
}

func TestTotals_Empty(t *testing.T) {
	totals := Totals(nil, func(s domain.Session) string { return s.Activity }, time.Now())
	assert.Empty(t, totals)
}

func TestLeaderboard_SortsByTotalDescending(t *testing.T) {
	entries := Leaderboard(map[string]time.Duration{
		"Valheim":   time.Hour,
		"Minecraft": 3 * time.Hour,
		"Factorio":  2 * time.Hour,
	})

	require.Len(t, entries, 3)
	assert.Equal(t, "Minecraft", entries[0].Key)
	assert.Equal(t, "Factorio", entries[1].Key)
	assert.Equal(t, "Valheim", entries[2].Key)
}

func TestLeaderboard_TiesBreakByKeyAscending(t *testing.T) {
	entries := Leaderboard(map[string]time.Duration{
		"Zelda":     time.Hour,
		"Animal":    time.Hour,
		"Minecraft": time.Hour,
	})

	require.Len(t, entries, 3)
	assert.Equal(t, "Animal", entries[0].Key)
	assert.Equal(t, "Minecraft", entries[1].Key)
	assert.Equal(t, "Zelda", entries[2].Key)
}

func TestActiveSessions_SortsLongestFirst(t *testing.T) {
	mClock := quartz.NewMock(t)
	now := mClock.Now().UTC()

	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().FindAllActive(mock.Anything).Return([]domain.Session{
		{ID: "1", PlayerID: "p1", DisplayName: "Alice", Activity: "Minecraft", StartedAt: now.Add(-10 * time.Minute), Active: true},
		{ID: "2", PlayerID: "p2", DisplayName: "Bob", Activity: "Valheim", StartedAt: now.Add(-time.Hour), Active: true},
	}, nil)

	stats := NewStatsService(store, mClock)
	rows, err := stats.ActiveSessions(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bob", rows[0].DisplayName)
	assert.Equal(t, time.Hour, rows[0].Elapsed)
	assert.Equal(t, "Alice", rows[1].DisplayName)
	assert.Equal(t, 10*time.Minute, rows[1].Elapsed)
}

func TestActiveSessions_EmptyStore(t *testing.T) {
	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().FindAllActive(mock.Anything).Return(nil, nil)

	stats := NewStatsService(store, quartz.NewMock(t))
	rows, err := stats.ActiveSessions(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestActivityLeaderboard_SumsAcrossSessions(t *testing.T) {
	mClock := quartz.NewMock(t)
	now := mClock.Now().UTC()

	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().FindAll(mock.Anything).Return([]domain.Session{
		closedFor("p1", "Alice", "Minecraft", now.Add(-5*time.Hour), time.Hour),
		closedFor("p2", "Bob", "Minecraft", now.Add(-4*time.Hour), time.Hour),
		closedFor("p1", "Alice", "Valheim", now.Add(-2*time.Hour), 90*time.Minute),
	}, nil)

	stats := NewStatsService(store, mClock)
	entries, err := stats.ActivityLeaderboard(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, LeaderboardEntry{Key: "Minecraft", Total: 2 * time.Hour}, entries[0])
	assert.Equal(t, LeaderboardEntry{Key: "Valheim", Total: 90 * time.Minute}, entries[1])
}

func TestActivityLeaderboard_StoreError(t *testing.T) {
	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("boom"))

	stats := NewStatsService(store, quartz.NewMock(t))
	_, err := stats.ActivityLeaderboard(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestPlayerLeaderboard_KeysByDisplayName(t *testing.T) {
	mClock := quartz.NewMock(t)
	now := mClock.Now().UTC()

	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().FindAll(mock.Anything).Return([]domain.Session{
		closedFor("p1", "Alice", "Minecraft", now.Add(-5*time.Hour), time.Hour),
		closedFor("p1", "Alice", "Valheim", now.Add(-3*time.Hour), time.Hour),
		closedFor("p2", "", "Minecraft", now.Add(-2*time.Hour), 30*time.Minute),
	}, nil)

	stats := NewStatsService(store, mClock)
	entries, err := stats.PlayerLeaderboard(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Alice", entries[0].Key)
	assert.Equal(t, 2*time.Hour, entries[0].Total)

	// Nameless records fall back to the player ID.
	assert.Equal(t, "p2", entries[1].Key)
}

func TestDistribution_WholeMinutes(t *testing.T) {
	mClock := quartz.NewMock(t)
	now := mClock.Now().UTC()

	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().FindAll(mock.Anything).Return([]domain.Session{
		closedFor("p1", "Alice", "Minecraft", now.Add(-time.Hour), 90*time.Second),
		closedFor("p2", "Bob", "Valheim", now.Add(-time.Hour), 59*time.Second),
	}, nil)

	stats := NewStatsService(store, mClock)
	dist, err := stats.Distribution(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["Minecraft"])
	assert.Equal(t, int64(0), dist["Valheim"])
}

func TestConcurrency_UsesClampedBucket(t *testing.T) {
	mClock := quartz.NewMock(t)
	now := mClock.Now().UTC()
	aligned := now.Truncate(time.Minute).Add(-2 * time.Minute)

	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().FindAll(mock.Anything).Return([]domain.Session{
		closedFor("p1", "Alice", "Minecraft", aligned, time.Minute),
	}, nil)

	stats := NewStatsService(store, mClock)

	// A requested width of 10s clamps to 30s, so consecutive points are 30s
	// apart.
	series, err := stats.Concurrency(context.Background(), 10)

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(series), 2)
	assert.Equal(t, 30*time.Second, series[1].Timestamp.Sub(series[0].Timestamp))
}

func TestTimeline_RendersIntervals(t *testing.T) {
	mClock := quartz.NewMock(t)
	now := mClock.Now().UTC()
	start := now.Add(-time.Hour)

	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().FindAll(mock.Anything).Return([]domain.Session{
		closedFor("p1", "Alice", "Minecraft", start, 20*time.Minute),
		{ID: "live", PlayerID: "p2", DisplayName: "Bob", Activity: "Valheim", StartedAt: now.Add(-5 * time.Minute), Active: true},
	}, nil)

	stats := NewStatsService(store, mClock)
	entries, err := stats.Timeline(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, start, entries[0].Start)
	assert.Equal(t, start.Add(20*time.Minute), entries[0].End)

	// The live session runs right up to now.
	assert.Equal(t, now, entries[1].End)
}

func TestTimeline_DropsZeroStartRecords(t *testing.T) {
	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().FindAll(mock.Anything).Return([]domain.Session{
		{ID: "broken", PlayerID: "p1", Activity: "Minecraft", Duration: time.Hour},
	}, nil)

	stats := NewStatsService(store, quartz.NewMock(t))
	entries, err := stats.Timeline(context.Background())

	require.NoError(t, err)
	assert.Empty(t, entries)
}

package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playtrack/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func testSession(playerID, activity string, active bool) domain.Session {
	return domain.Session{
		ID:          uuid.NewString(),
		PlayerID:    playerID,
		DisplayName: "Player " + playerID,
		Activity:    activity,
		StartedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Duration:    0,
		Active:      active,
	}
}

func TestSave_CreatesSession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	session := testSession("p1", "Minecraft", true)
	require.NoError(t, store.Save(ctx, session))

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got := all[0]
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, "p1", got.PlayerID)
	assert.Equal(t, "Player p1", got.DisplayName)
	assert.Equal(t, "Minecraft", got.Activity)
	assert.True(t, got.Active)
	assert.WithinDuration(t, session.StartedAt, got.StartedAt, time.Second)
}

func TestSave_UpdatesExistingSession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	session := testSession("p1", "Minecraft", true)
	require.NoError(t, store.Save(ctx, session))

	// Close the session and save again under the same ID.
	session.Active = false
	session.Duration = 42 * time.Minute
	require.NoError(t, store.Save(ctx, session))

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Active)
	assert.Equal(t, 42*time.Minute, all[0].Duration)
}

func TestSave_PreservesDurationPrecision(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	session := testSession("p1", "Minecraft", false)
	session.Duration = 90*time.Second + 123456789*time.Nanosecond
	require.NoError(t, store.Save(ctx, session))

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, session.Duration, all[0].Duration)
}

func TestSave_RejectsMissingID(t *testing.T) {
	store := newTestStore(t)

	session := testSession("p1", "Minecraft", true)
	session.ID = ""

	err := store.Save(context.Background(), session)
	assert.Error(t, err)
}

func TestFindActive_FiltersByPlayerAndState(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("p1", "Minecraft", true)))
	require.NoError(t, store.Save(ctx, testSession("p1", "Valheim", true)))
	require.NoError(t, store.Save(ctx, testSession("p1", "Factorio", false)))
	require.NoError(t, store.Save(ctx, testSession("p2", "Minecraft", true)))

	active, err := store.FindActive(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, active, 2)

	activities := []string{active[0].Activity, active[1].Activity}
	assert.ElementsMatch(t, []string{"Minecraft", "Valheim"}, activities)
	for _, s := range active {
		assert.Equal(t, "p1", s.PlayerID)
		assert.True(t, s.Active)
	}
}

func TestFindActive_NoSessions(t *testing.T) {
	store := newTestStore(t)

	active, err := store.FindActive(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestFindAll_EmptyStore(t *testing.T) {
	store := newTestStore(t)

	all, err := store.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFindAll_ReturnsClosedAndActive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("p1", "Minecraft", true)))
	require.NoError(t, store.Save(ctx, testSession("p2", "Valheim", false)))

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFindAllActive_FiltersClosed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("p1", "Minecraft", true)))
	require.NoError(t, store.Save(ctx, testSession("p2", "Valheim", false)))
	require.NoError(t, store.Save(ctx, testSession("p3", "Factorio", true)))

	active, err := store.FindAllActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, s := range active {
		assert.True(t, s.Active)
	}
}

func TestFindAll_OrderedByStart(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	later := testSession("p1", "Valheim", false)
	later.StartedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	earlier := testSession("p2", "Minecraft", false)
	earlier.StartedAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, later))
	require.NoError(t, store.Save(ctx, earlier))

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Minecraft", all[0].Activity)
	assert.Equal(t, "Valheim", all[1].Activity)
}

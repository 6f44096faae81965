package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playtrack/internal/domain"
)

func staticLoader(players []domain.Player, err error) func() ([]domain.Player, error) {
	return func() ([]domain.Player, error) {
		return players, err
	}
}

func TestStaticDirectory_EmptyBeforeRefresh(t *testing.T) {
	dir := NewStaticDirectory(staticLoader([]domain.Player{{ID: "p1"}}, nil))

	players, err := dir.Players(context.Background())
	require.NoError(t, err)
	assert.Empty(t, players)

	_, err = dir.DisplayName("p1")
	assert.ErrorIs(t, err, domain.ErrPlayerUnknown)
}

func TestStaticDirectory_Refresh(t *testing.T) {
	dir := NewStaticDirectory(staticLoader([]domain.Player{
		{ID: "p1", DisplayName: "Alice"},
		{ID: "p2", DisplayName: "Bob"},
	}, nil))

	require.NoError(t, dir.Refresh(context.Background()))

	players, err := dir.Players(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Player{
		{ID: "p1", DisplayName: "Alice"},
		{ID: "p2", DisplayName: "Bob"},
	}, players)

	name, err := dir.DisplayName("p2")
	require.NoError(t, err)
	assert.Equal(t, "Bob", name)
}

func TestStaticDirectory_RefreshSkipsInvalidEntries(t *testing.T) {
	dir := NewStaticDirectory(staticLoader([]domain.Player{
		{ID: "  ", DisplayName: "Nobody"},
		{ID: "p1", DisplayName: "Alice"},
		{ID: "p1", DisplayName: "Alice Again"},
		{ID: " p2 ", DisplayName: "  Bob  "},
	}, nil))

	require.NoError(t, dir.Refresh(context.Background()))

	players, err := dir.Players(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Player{
		{ID: "p1", DisplayName: "Alice"},
		{ID: "p2", DisplayName: "Bob"},
	}, players)
}

func TestStaticDirectory_RefreshDefaultsDisplayName(t *testing.T) {
	dir := NewStaticDirectory(staticLoader([]domain.Player{
		{ID: "p1", DisplayName: "   "},
	}, nil))

	require.NoError(t, dir.Refresh(context.Background()))

	name, err := dir.DisplayName("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", name)
}

func TestStaticDirectory_RefreshFailureKeepsRoster(t *testing.T) {
	players := []domain.Player{{ID: "p1", DisplayName: "Alice"}}
	loadErr := error(nil)
	dir := NewStaticDirectory(func() ([]domain.Player, error) {
		return players, loadErr
	})

	require.NoError(t, dir.Refresh(context.Background()))

	loadErr = assert.AnError
	err := dir.Refresh(context.Background())
	assert.ErrorIs(t, err, assert.AnError)

	roster, err := dir.Players(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Player{{ID: "p1", DisplayName: "Alice"}}, roster)
}

func TestStaticDirectory_RefreshReplacesRoster(t *testing.T) {
	players := []domain.Player{{ID: "p1", DisplayName: "Alice"}}
	dir := NewStaticDirectory(func() ([]domain.Player, error) {
		return players, nil
	})
	require.NoError(t, dir.Refresh(context.Background()))

	players = []domain.Player{{ID: "p2", DisplayName: "Bob"}}
	require.NoError(t, dir.Refresh(context.Background()))

	roster, err := dir.Players(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Player{{ID: "p2", DisplayName: "Bob"}}, roster)

	_, err = dir.DisplayName("p1")
	assert.ErrorIs(t, err, domain.ErrPlayerUnknown)
}

func TestStaticDirectory_PlayersReturnsCopy(t *testing.T) {
	dir := NewStaticDirectory(staticLoader([]domain.Player{
		{ID: "p1", DisplayName: "Alice"},
	}, nil))
	require.NoError(t, dir.Refresh(context.Background()))

	players, err := dir.Players(context.Background())
	require.NoError(t, err)
	players[0].DisplayName = "Mallory"

	fresh, err := dir.Players(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice", fresh[0].DisplayName)
}

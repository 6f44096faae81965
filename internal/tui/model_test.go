package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playtrack/internal/services"
)

func TestActiveRows(t *testing.T) {
	started := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := activeRows([]services.ActiveRow{
		{PlayerID: "p1", DisplayName: "Alice", Activity: "Chess", StartedAt: started, Elapsed: 90 * time.Minute},
		{PlayerID: "p2", DisplayName: "Bob", Activity: "Go", StartedAt: started, Elapsed: 42 * time.Second},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0][0])
	assert.Equal(t, "Chess", rows[0][1])
	assert.Equal(t, started.Local().Format("15:04:05"), rows[0][2])
	assert.Equal(t, "01:30:00", rows[0][3])
	assert.Equal(t, "Bob", rows[1][0])
	assert.Equal(t, "00:00:42", rows[1][3])
}

func TestActiveRows_Empty(t *testing.T) {
	assert.Empty(t, activeRows(nil))
}

func TestLeaderboardRows(t *testing.T) {
	rows := leaderboardRows([]services.LeaderboardEntry{
		{Key: "Chess", Total: 2 * time.Hour},
		{Key: "Go", Total: 30 * time.Minute},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "Chess", rows[0][1])
	assert.Equal(t, "02:00:00", rows[0][2])
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "Go", rows[1][1])
	assert.Equal(t, "00:30:00", rows[1][2])
}

func TestModelUpdate_QuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{name: "q", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{name: "ctrl+c", key: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(nil, time.Second, 0)

			_, cmd := m.Update(tt.key)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestModelUpdate_TabCyclesViews(t *testing.T) {
	m := NewModel(nil, time.Second, 0)
	assert.Equal(t, viewActive, m.view)

	tab := tea.KeyMsg{Type: tea.KeyTab}

	updated, _ := m.Update(tab)
	m = updated.(Model)
	assert.Equal(t, viewActivities, m.view)

	updated, _ = m.Update(tab)
	m = updated.(Model)
	assert.Equal(t, viewPlayers, m.view)

	updated, _ = m.Update(tab)
	m = updated.(Model)
	assert.Equal(t, viewActive, m.view)
}

func TestModelUpdate_StatsMsgPopulatesTable(t *testing.T) {
	m := NewModel(nil, time.Second, 0)

	updated, cmd := m.Update(statsMsg{
		active: []services.ActiveRow{
			{PlayerID: "p1", DisplayName: "Alice", Activity: "Chess", Elapsed: time.Minute},
		},
		activities: []services.LeaderboardEntry{{Key: "Chess", Total: time.Hour}},
		players:    []services.LeaderboardEntry{{Key: "Alice", Total: time.Hour}},
	})

	m = updated.(Model)
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "Alice", m.table.Rows()[0][0])
	assert.NoError(t, m.err)
	assert.NotNil(t, cmd, "refresh tick should be armed")
}

func TestModelUpdate_StatsMsgErrorKeepsData(t *testing.T) {
	m := NewModel(nil, time.Second, 0)

	updated, _ := m.Update(statsMsg{
		active: []services.ActiveRow{{PlayerID: "p1", DisplayName: "Alice", Activity: "Chess"}},
	})
	m = updated.(Model)

	updated, _ = m.Update(statsMsg{err: assert.AnError})
	m = updated.(Model)

	assert.Error(t, m.err)
	assert.Len(t, m.table.Rows(), 1, "stale rows should survive a failed refresh")
}

func TestModelUpdate_ChartToggle(t *testing.T) {
	m := NewModel(nil, time.Second, 0)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = updated.(Model)

	assert.True(t, m.showChart)
	assert.NotNil(t, cmd, "enabling the chart should trigger a fetch")

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = updated.(Model)

	assert.False(t, m.showChart)
	assert.Nil(t, cmd)
}

func TestModelView_ShowsHelp(t *testing.T) {
	m := NewModel(nil, time.Second, 0)

	view := m.View()

	assert.Contains(t, view, "playtrack")
	assert.Contains(t, view, "q: quit")
	assert.Contains(t, view, "active sessions")
}

func TestModelView_ShowsError(t *testing.T) {
	m := NewModel(nil, time.Second, 0)

	updated, _ := m.Update(statsMsg{err: assert.AnError})
	m = updated.(Model)

	assert.Contains(t, m.View(), "Error:")
}

func TestViewName(t *testing.T) {
	assert.Equal(t, "active sessions", viewName(viewActive))
	assert.Equal(t, "activity totals", viewName(viewActivities))
	assert.Equal(t, "player totals", viewName(viewPlayers))
}

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"playtrack/internal/logging"
	"playtrack/internal/services"
	"playtrack/internal/theme"
)

// Dashboard views cycled with tab
const (
	viewActive = iota
	viewActivities
	viewPlayers
	viewCount
)

// tickMsg triggers the next data refresh
type tickMsg time.Time

// statsMsg carries one refresh of dashboard data
type statsMsg struct {
	active      []services.ActiveRow
	activities  []services.LeaderboardEntry
	players     []services.LeaderboardEntry
	concurrency []services.ConcurrencyPoint
	err         error
}

// Model is the live dashboard shown by the top command.
type Model struct {
	stats         *services.StatsService
	interval      time.Duration
	bucketSeconds int

	view      int
	showChart bool

	table       table.Model
	active      []services.ActiveRow
	activities  []services.LeaderboardEntry
	players     []services.LeaderboardEntry
	concurrency []services.ConcurrencyPoint
	err         error
}

// NewModel creates the dashboard model refreshing every interval.
func NewModel(stats *services.StatsService, interval time.Duration, bucketSeconds int) Model {
	t := table.New(
		table.WithColumns(activeColumns()),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(theme.ColorSecondary)
	s.Selected = s.Selected.Foreground(theme.ColorHighlight).Background(theme.ColorSelected)
	t.SetStyles(s)

	return Model{
		stats:         stats,
		interval:      interval,
		bucketSeconds: bucketSeconds,
		table:         t,
	}
}

func activeColumns() []table.Column {
	return []table.Column{
		{Title: "Player", Width: 20},
		{Title: "Activity", Width: 24},
		{Title: "Started", Width: 10},
		{Title: "Elapsed", Width: 10},
	}
}

func leaderboardColumns(key string) []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: key, Width: 32},
		{Title: "Total", Width: 10},
	}
}

func activeRows(rows []services.ActiveRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, table.Row{
			row.DisplayName,
			row.Activity,
			row.StartedAt.Local().Format("15:04:05"),
			FormatDuration(row.Elapsed),
		})
	}
	return out
}

func leaderboardRows(entries []services.LeaderboardEntry) []table.Row {
	out := make([]table.Row, 0, len(entries))
	for i, entry := range entries {
		out = append(out, table.Row{
			fmt.Sprintf("%d", i+1),
			entry.Key,
			FormatDuration(entry.Total),
		})
	}
	return out
}

// fetchStats loads dashboard data off the Bubble Tea loop.
func fetchStats(stats *services.StatsService, withChart bool, bucketSeconds int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		msg := statsMsg{}

		active, err := stats.ActiveSessions(ctx)
		if err != nil {
			logging.Logger.Warn("Failed to fetch active sessions", "error", err)
			return statsMsg{err: err}
		}
		msg.active = active

		activities, err := stats.ActivityLeaderboard(ctx)
		if err != nil {
			logging.Logger.Warn("Failed to fetch activity leaderboard", "error", err)
			return statsMsg{err: err}
		}
		msg.activities = activities

		players, err := stats.PlayerLeaderboard(ctx)
		if err != nil {
			logging.Logger.Warn("Failed to fetch player leaderboard", "error", err)
			return statsMsg{err: err}
		}
		msg.players = players

		if withChart {
			concurrency, err := stats.Concurrency(ctx, bucketSeconds)
			if err != nil {
				logging.Logger.Warn("Failed to fetch concurrency", "error", err)
				return statsMsg{err: err}
			}
			msg.concurrency = concurrency
		}

		return msg
	}
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the first data fetch.
func (m Model) Init() tea.Cmd {
	return fetchStats(m.stats, m.showChart, m.bucketSeconds)
}

// Update handles key presses, refresh ticks, and fetched data.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.view = (m.view + 1) % viewCount
			m.rebuildTable()
			return m, nil
		case "c":
			m.showChart = !m.showChart
			if m.showChart {
				return m, fetchStats(m.stats, true, m.bucketSeconds)
			}
			return m, nil
		case "r":
			return m, fetchStats(m.stats, m.showChart, m.bucketSeconds)
		}
	case tea.WindowSizeMsg:
		height := msg.Height - 12
		if height < 4 {
			height = 4
		}
		m.table.SetHeight(height)
		return m, nil
	case tickMsg:
		return m, fetchStats(m.stats, m.showChart, m.bucketSeconds)
	case statsMsg:
		m.err = msg.err
		if msg.err == nil {
			m.active = msg.active
			m.activities = msg.activities
			m.players = msg.players
			m.concurrency = msg.concurrency
			m.rebuildTable()
		}
		return m, tick(m.interval)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) rebuildTable() {
	// Clear rows before swapping columns so widths never disagree
	m.table.SetRows(nil)
	switch m.view {
	case viewActivities:
		m.table.SetColumns(leaderboardColumns("Activity"))
		m.table.SetRows(leaderboardRows(m.activities))
	case viewPlayers:
		m.table.SetColumns(leaderboardColumns("Player"))
		m.table.SetRows(leaderboardRows(m.players))
	default:
		m.table.SetColumns(activeColumns())
		m.table.SetRows(activeRows(m.active))
	}
}

// View renders the dashboard.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(theme.TitleStyle.Render("playtrack"))
	sb.WriteString(theme.SubtitleStyle.Render(" " + viewName(m.view)))
	sb.WriteString("\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n")

	if m.view == viewActive {
		sb.WriteString(theme.ActiveBadgeStyle.Render(fmt.Sprintf("%d playing now", len(m.active))))
		sb.WriteString("\n")
	}

	if m.showChart {
		sb.WriteString("\n")
		sb.WriteString(RenderConcurrencyChart(m.concurrency, services.ClampBucket(m.bucketSeconds)))
		sb.WriteString("\n")
	}

	if m.err != nil {
		sb.WriteString(theme.ErrorStyle.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString(theme.HelpStyle.Render("tab: switch view • c: concurrency • r: refresh • q: quit"))

	return sb.String()
}

func viewName(view int) string {
	switch view {
	case viewActivities:
		return "activity totals"
	case viewPlayers:
		return "player totals"
	default:
		return "active sessions"
	}
}

package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LegendStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// ActiveBadgeStyle marks in-progress sessions
var ActiveBadgeStyle = lipgloss.NewStyle().
	Foreground(ColorActive).
	Bold(true)

// Chart styles
var (
	ChartAxisStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ChartBarStyle = lipgloss.NewStyle().
			Foreground(ColorCount)

	ChartLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"playtrack/internal/logging"
	"playtrack/internal/tui"
)

// TopCmd shows the live dashboard
type TopCmd struct {
	RefreshSeconds int `help:"Seconds between dashboard refreshes" default:"5"`
}

// Run executes the dashboard
func (t *TopCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting playtrack dashboard")

	bucketSeconds := 0
	if cli.settings != nil {
		bucketSeconds = cli.settings.BucketSecondsValue()
	}

	interval := time.Duration(t.RefreshSeconds) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}

	p := tea.NewProgram(
		tui.NewModel(cli.Container.StatsService, interval, bucketSeconds),
		tea.WithAltScreen(),
	)

	logging.Logger.Info("Starting dashboard program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Dashboard error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("Dashboard exited normally")
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"playtrack/internal/services"
	"playtrack/internal/tui"
)

// StatsCmd shows play time reports
type StatsCmd struct {
	View   string `help:"Report to show" default:"activities" enum:"activities,players,active,distribution,concurrency,timeline"`
	Bucket int    `help:"Concurrency bucket width in seconds (clamped to 30-900)" default:"0"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	ctx := context.Background()
	stats := cli.Container.StatsService

	switch s.View {
	case "players":
		entries, err := stats.PlayerLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("failed to get player totals: %w", err)
		}
		renderLeaderboard("Player", entries)
	case "active":
		rows, err := stats.ActiveSessions(ctx)
		if err != nil {
			return fmt.Errorf("failed to get active sessions: %w", err)
		}
		renderActive(rows)
	case "distribution":
		minutes, err := stats.Distribution(ctx)
		if err != nil {
			return fmt.Errorf("failed to get distribution: %w", err)
		}
		renderDistribution(minutes)
	case "concurrency":
		points, err := stats.Concurrency(ctx, s.Bucket)
		if err != nil {
			return fmt.Errorf("failed to get concurrency: %w", err)
		}
		fmt.Println(tui.RenderConcurrencyChart(points, services.ClampBucket(s.Bucket)))
	case "timeline":
		entries, err := stats.Timeline(ctx)
		if err != nil {
			return fmt.Errorf("failed to get timeline: %w", err)
		}
		renderTimeline(entries)
	default:
		entries, err := stats.ActivityLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("failed to get activity totals: %w", err)
		}
		renderLeaderboard("Activity", entries)
	}

	return nil
}

// renderLeaderboard displays ranked totals in table format
func renderLeaderboard(keyHeader string, entries []services.LeaderboardEntry) {
	fmt.Printf("Play Time by %s\n\n", keyHeader)

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("%-4s %-32s %s\n", "#", keyHeader, "Total")
	fmt.Println(strings.Repeat("─", 48))
	for i, entry := range entries {
		fmt.Printf("%-4d %-32s %s\n", i+1, entry.Key, tui.FormatDuration(entry.Total))
	}
}

// renderActive displays currently open sessions
func renderActive(rows []services.ActiveRow) {
	fmt.Printf("Active Sessions - %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	if len(rows) == 0 {
		fmt.Println("Nobody is playing right now.")
		return
	}

	fmt.Printf("%-20s %-24s %-10s %s\n", "Player", "Activity", "Started", "Elapsed")
	fmt.Println(strings.Repeat("─", 66))
	for _, row := range rows {
		fmt.Printf("%-20s %-24s %-10s %s\n",
			row.DisplayName,
			row.Activity,
			row.StartedAt.Local().Format("15:04:05"),
			tui.FormatDuration(row.Elapsed))
	}
}

// renderDistribution displays whole minutes of play per activity
func renderDistribution(minutes map[string]int64) {
	fmt.Printf("Minutes per Activity\n\n")

	if len(minutes) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	activities := make([]string, 0, len(minutes))
	for activity := range minutes {
		activities = append(activities, activity)
	}
	sort.Strings(activities)

	fmt.Printf("%-32s %s\n", "Activity", "Minutes")
	fmt.Println(strings.Repeat("─", 42))
	for _, activity := range activities {
		fmt.Printf("%-32s %d\n", activity, minutes[activity])
	}
}

// renderTimeline displays every recorded session as an interval
func renderTimeline(entries []services.TimelineEntry) {
	fmt.Printf("Session Timeline\n\n")

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("%-20s %-24s %-20s %s\n", "Player", "Activity", "Start", "End")
	fmt.Println(strings.Repeat("─", 86))
	for _, entry := range entries {
		fmt.Printf("%-20s %-24s %-20s %s\n",
			entry.DisplayName,
			entry.Activity,
			entry.Start.Local().Format("2006-01-02 15:04:05"),
			entry.End.Local().Format("2006-01-02 15:04:05"))
	}
}

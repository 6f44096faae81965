package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"playtrack/internal/services"
	"playtrack/internal/theme"
)

const (
	concurrencyChartHeight   = 6 // Height of the chart area
	concurrencyChartWidth    = 96
	concurrencyChartBarWidth = 2
	concurrencyChartBarGap   = 1
)

// RenderConcurrencyChart renders concurrent player counts per bucket.
// This is used by both the TUI and CLI to ensure consistent formatting.
func RenderConcurrencyChart(points []services.ConcurrencyPoint, bucket time.Duration) string {
	if len(points) == 0 {
		return theme.LegendStyle.Render("No sessions recorded yet.")
	}

	var sb strings.Builder

	peak := 0
	for _, point := range points {
		if point.Count > peak {
			peak = point.Count
		}
	}
	maxVal := float64(peak)
	if maxVal == 0 {
		maxVal = 1 // Avoid division by zero
	}

	// Keep the most recent window that fits the chart width
	maxBars := concurrencyChartWidth / (concurrencyChartBarWidth + concurrencyChartBarGap)
	if len(points) > maxBars {
		points = points[len(points)-maxBars:]
	}

	legend := theme.LegendStyle.Render(fmt.Sprintf(
		"Concurrency: peak %d, bucket %s, showing %s to %s",
		peak,
		bucket,
		points[0].Timestamp.Local().Format("15:04"),
		points[len(points)-1].Timestamp.Local().Format("15:04"),
	))
	sb.WriteString(legend)
	sb.WriteString("\n\n")

	chart := barchart.New(concurrencyChartWidth, concurrencyChartHeight,
		barchart.WithStyles(theme.ChartAxisStyle, theme.ChartLabelStyle),
	)
	chart.SetBarWidth(concurrencyChartBarWidth)
	chart.SetBarGap(concurrencyChartBarGap)
	chart.SetMax(maxVal)

	for i, point := range points {
		// Hour labels on every fourth bar, two columns wide to fit the bar
		label := ""
		if i%4 == 0 {
			label = point.Timestamp.Local().Format("15")
		}
		chart.Push(barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: "players", Value: float64(point.Count), Style: theme.ChartBarStyle},
			},
		})
	}

	chart.Draw()
	sb.WriteString(chart.View())

	return sb.String()
}

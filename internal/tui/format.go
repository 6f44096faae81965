package tui

import (
	"fmt"
	"time"
)

// FormatDuration renders d as HH:MM:SS with hours running past 24.
// Shared by the dashboard and the stats command.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

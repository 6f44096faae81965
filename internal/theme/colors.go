package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles, table headers
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSelected  Color = "237" // Row highlight background
)

// Session colors
const (
	ColorActive Color = "2"  // Green - session in progress
	ColorCount  Color = "39" // Blue - concurrency bars
)

// ActivityPalette colors activities by rank, cycling when exhausted
var ActivityPalette = []Color{"141", "33", "214", "226", "46", "205", "39", "208"}

// ActivityColor returns the palette color for the activity at position i
func ActivityColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return ActivityPalette[i%len(ActivityPalette)]
}

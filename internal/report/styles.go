package report

import "github.com/charmbracelet/lipgloss"

// Color palette for terminal output, tuned for dark backgrounds.
const (
	// ColorPrimary is purple, used for titles and table headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, used for secondary text and the 1.0x reference.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorFaster is green, used when the baseline wins.
	ColorFaster = lipgloss.Color("#10B981")

	// ColorSlower is red, used when the candidate wins.
	ColorSlower = lipgloss.Color("#EF4444")

	// ColorBorder is light gray, used for table borders.
	ColorBorder = lipgloss.Color("#9CA3AF")
)

var (
	// TitleStyle is for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for captions under a title.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	numberStyle = cellStyle.
			Align(lipgloss.Right)

	borderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	fasterStyle = lipgloss.NewStyle().
			Foreground(ColorFaster)

	slowerStyle = lipgloss.NewStyle().
			Foreground(ColorSlower)

	referenceStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// speedupStyle colours a bar or value by which adapter won.
func speedupStyle(sp float64) lipgloss.Style {
	if sp >= 1 {
		return fasterStyle
	}
	return slowerStyle
}

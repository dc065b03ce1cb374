package report

import "github.com/charmbracelet/lipgloss"

// Palette shared by the text table, the distribution chart and the scheme form.
//
//nolint:gochecknoglobals // Style definitions
var (
	Primary   = lipgloss.Color("#7C3AED") // purple
	Secondary = lipgloss.Color("#10B981") // green
	Warning   = lipgloss.Color("#F59E0B") // amber
	Info      = lipgloss.Color("#3B82F6") // blue
	Muted     = lipgloss.Color("#6B7280") // gray
	Text      = lipgloss.Color("#F9FAFB")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			MarginBottom(1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	ScoreStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true).
			Padding(0, 1)

	CarriedStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// seriesColors colours the distribution bars, one per project type.
//
//nolint:gochecknoglobals // Style definitions
var seriesColors = []lipgloss.Color{Info, Secondary, Warning, Primary, Muted}

func seriesColor(i int) (color lipgloss.Color) {
	color = seriesColors[i%len(seriesColors)]
	return color
}

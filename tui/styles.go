package tui

import "github.com/charmbracelet/lipgloss"

// Palette: green for collected records, amber while a traversal is in
// flight, grey for chrome around the two actions.
const (
	colorAccent  = "#2BB673"
	colorWorking = "#D9A514"
	colorFail    = "#D94F4F"
	colorChrome  = "#6B6B6B"
)

var (
	// titleStyle heads the surface.
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)).
		MarginTop(1).
		MarginBottom(1)

	// bannerStyle renders the ready/complete state line.
	bannerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(colorAccent)).
		Padding(0, 1)

	// workingStyle marks an in-flight scrape or send.
	workingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorWorking))

	// failStyle marks run errors and failed deliveries.
	failStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorFail))

	// chromeStyle dims log lines and key hints.
	chromeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorChrome))

	// dateStyle renders the date column of the result table.
	dateStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorAccent))

	// resultBoxStyle frames the collected records.
	resultBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Padding(0, 1)
)

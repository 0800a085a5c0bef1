package dashboard

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#94a3b8")
	colorBlue   = lipgloss.Color("#38bdf8")
	colorWhite  = lipgloss.Color("#e2e8f0")
	colorDark   = lipgloss.Color("#1e293b")
)

var styleHeader = lipgloss.NewStyle().
	Bold(true).
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

var stylePanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorGray).
	Padding(0, 1)

var (
	stylePanelTitle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	styleLabel      = lipgloss.NewStyle().Foreground(colorGray)
	styleOK         = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleWarn       = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleError      = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleDim        = lipgloss.NewStyle().Foreground(colorGray)
)

// statusStyle colors health statuses, hop statuses and alert severities.
func statusStyle(s string) lipgloss.Style {
	switch s {
	case "healthy", "success", "good", "info":
		return styleOK
	case "degraded", "warning":
		return styleWarn
	case "timeout", "high", "critical":
		return styleError
	default:
		return styleDim
	}
}

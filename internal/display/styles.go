package display

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#10B981")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorFg      = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// RenderTitle renders a section title.
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

// RenderError renders an error line for the terminal.
func RenderError(err string) string {
	return ErrorStyle.Render("Error: " + err)
}

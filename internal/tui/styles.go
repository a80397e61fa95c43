package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#7C3AED")
	mutedColor   = lipgloss.Color("#6B7280")
	errorColor   = lipgloss.Color("#DC2626")
	okColor      = lipgloss.Color("#059669")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).MarginBottom(1)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor)
	infoStyle   = lipgloss.NewStyle().Foreground(okColor)

	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(mutedColor)
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(primaryColor)

	rowStyle      = lipgloss.NewStyle().PaddingLeft(2)
	cursorStyle   = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(mutedColor).Strikethrough(true)
	selectedStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)
)

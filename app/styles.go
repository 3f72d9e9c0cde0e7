package app

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	menuKeyStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	menuDescStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	menuOffStyle   = lipgloss.NewStyle().Foreground(colorDisabled)
	noteLabelStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

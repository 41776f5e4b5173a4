package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorPurple    = lipgloss.Color("#8524a6")
	colorGreen     = lipgloss.Color("#00FF00")
	colorRed       = lipgloss.Color("#FF0000")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	labelFocusedStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			MarginTop(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorPurple)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple).
			Padding(1, 3).
			MarginTop(1)

	verifiedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	screenStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

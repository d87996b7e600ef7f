package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// UI color scheme
var (
	red      = lipgloss.AdaptiveColor{Light: "#FE5F86", Dark: "#FE5F86"}
	indigo   = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	green    = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	yellow   = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}
	gray     = lipgloss.AdaptiveColor{Light: "#9E9E9E", Dark: "#BDBDBD"}
	darkGray = lipgloss.AdaptiveColor{Light: "#424242", Dark: "#757575"}
)

// UI styles
var (
	// Base styles
	activeStyle = lipgloss.NewStyle().
			BorderForeground(indigo).
			BorderStyle(lipgloss.RoundedBorder())

	inactiveStyle = lipgloss.NewStyle().
			BorderForeground(gray).
			BorderStyle(lipgloss.RoundedBorder())

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(indigo).
			Padding(0, 1)

	// Error and status styles
	errorStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(gray).
			Padding(0, 1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(indigo)

	// Browser styles
	groupHeaderStyle = lipgloss.NewStyle().
				Foreground(indigo).
				Bold(true)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231"))

	cardMetaStyle = lipgloss.NewStyle().
			Foreground(darkGray)

	summaryStyle = lipgloss.NewStyle().
			Foreground(gray)

	cursorStyle = lipgloss.NewStyle().
			Foreground(yellow).
			Bold(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	// Dialog styles
	dialogStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(indigo).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(indigo).
				Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)
)

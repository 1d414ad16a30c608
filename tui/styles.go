package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary = lipgloss.Color("#2563EB")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
	colorFg      = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	OutputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	CommandStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(colorFg).
			Bold(true).
			Padding(0, 2).
			MarginTop(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for table and pager rendering.
//
//nolint:gochecknoglobals // Styles are package-wide rendering constants.
var (
	// HeaderStyle renders section headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	// TableHeaderStyle renders the table header row.
	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true).
				Bold(true)

	// TableSelectedStyle highlights the selected table row.
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Bold(false)

	// InfoStyle renders informational placeholders such as the empty and
	// loading body states.
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	// DisabledStyle dims pager controls that cannot fire.
	DisabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// PagerStyle renders the active pager controls.
	PagerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// WarningStyle renders destructive-action prompts.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	// BoxStyle wraps modal content in a rounded border.
	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	// HelpStyle renders the key hint line.
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

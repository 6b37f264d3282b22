// Package tui provides the interactive directory browser for duscope.
// It uses Charmbracelet's Bubble Tea, Lip Gloss, and Bubbles, and is a
// thin observer over scan sessions: all sizing logic lives in pkg.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the TUI.
var (
	primaryColor = lipgloss.Color("#7D56F4")
	accentColor  = lipgloss.Color("#00D9FF")
	dangerColor  = lipgloss.Color("#DC3545")

	mutedColor     = lipgloss.Color("#666666")
	highlightColor = lipgloss.Color("#1A1A2E")
)

// Text styles.
var (
	// titleStyle for the header line.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// pathStyle for the current directory path.
	pathStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// mutedTextStyle for help text and secondary info.
	mutedTextStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// errorTextStyle for inaccessible entries and list failures.
	errorTextStyle = lipgloss.NewStyle().
			Foreground(dangerColor)
)

// List styles.
var (
	// selectedItemStyle for the row under the cursor.
	selectedItemStyle = lipgloss.NewStyle().
				Background(highlightColor).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	// sizeStyle for the size column.
	sizeStyle = lipgloss.NewStyle().
			Width(12).
			Align(lipgloss.Right)
)

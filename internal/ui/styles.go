// Package ui handles terminal UI rendering.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors - using more subtle, balanced palette
var (
	ColorPrimary   = lipgloss.Color("4")   // Blue
	ColorSecondary = lipgloss.Color("8")   // Gray
	ColorSuccess   = lipgloss.Color("2")   // Green (dimmer)
	ColorWarning   = lipgloss.Color("3")   // Yellow (dimmer)
	ColorDanger    = lipgloss.Color("1")   // Red (dimmer)
	ColorMuted     = lipgloss.Color("245") // Light gray
	ColorHighlight = lipgloss.Color("6")   // Cyan
	ColorText      = lipgloss.Color("252") // Light text
)

// Styles
var (
	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2)

	// Title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	// Highlighted row style
	HighlightStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	// Normal item style
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Selected (checked) item style
	CheckedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// Department / role tag style
	TagStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Manager marker style
	ManagerStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Current-user marker style
	CurrentStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Input style
	InputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	// Error style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	// Muted path/detail style
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Divider style
	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Symbols
const (
	SymbolCursor    = "›"
	SymbolChecked   = "☑"
	SymbolUnchecked = "☐"
	SymbolDot       = "●"
	SymbolManager   = "◆"
	SymbolCurrent   = "•"
	SymbolDivider   = "─"
	SymbolCaret     = "▾"
)

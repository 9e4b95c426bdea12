// Package styles provides shared lipgloss styles for terminal output.
//
// This package centralizes color definitions to keep the report and
// prompts visually consistent.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the output
var (
	// Success is used for protected marks and positive outcomes (green)
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Error is used for deletion marks and failures (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Info is used for hints like the --clean suggestion (blue)
	Info lipgloss.TerminalColor = lipgloss.Color("39")

	// Warning is used for skips and cancellations (yellow)
	Warning lipgloss.TerminalColor = lipgloss.Color("220")

	// Muted is used for reasons and ages (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting, used for section headers
	Bold = lipgloss.NewStyle().Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// InfoStyle applies the info color with bold
	InfoStyle = lipgloss.NewStyle().Foreground(Info).Bold(true)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

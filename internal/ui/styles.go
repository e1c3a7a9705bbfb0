// Package ui implements the interactive terminal flow with bubbletea.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds all the styled components used across the phases.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Card     lipgloss.Style
	Category lipgloss.Style
	Kept     lipgloss.Style
	Discard  lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles creates the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 3).
			Width(56),

		Category: lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true),

		Kept: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),

		Discard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),

		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}

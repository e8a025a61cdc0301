package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text
// - Accent (soft teal): record ids, highlights
// - Muted (gray): secondary info, scores
// - No colored success/error/warning; unicode symbols only

var (
	// Accent style for record ids and highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#2DD4BF"))

	// Muted style for secondary info like scores and counts
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis and table headers
	Bold = lipgloss.NewStyle().Bold(true)
)

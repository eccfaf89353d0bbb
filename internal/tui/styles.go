package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the list view
type Styles struct {
	Title     lipgloss.Style
	Banner    lipgloss.Style
	Pinned    lipgloss.Style
	Selected  lipgloss.Style
	Dim       lipgloss.Style
	Empty     lipgloss.Style
	Error     lipgloss.Style
	Pager     lipgloss.Style
	Help      lipgloss.Style
	AdminHint lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Pinned:    lipgloss.NewStyle().Background(lipgloss.Color("17")),
		Selected:  lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Pager:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		Help:      lipgloss.NewStyle().Faint(true),
		AdminHint: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
	}
}

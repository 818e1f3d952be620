package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Overlay is a modal Bubble Tea widget mounted above the book list.
// Update returns nil once the overlay has closed itself.
type Overlay interface {
	Init() tea.Cmd
	Update(tea.Msg) (Overlay, tea.Cmd)
	View() string
	SetSize(width, height int)
}

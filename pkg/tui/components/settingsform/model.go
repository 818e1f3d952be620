// Package settingsform implements the settings overlay used to pick the
// colour theme.
package settingsform

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/bookshelf/pkg/browser"
	"tableflip.dev/bookshelf/pkg/theme"
	"tableflip.dev/bookshelf/pkg/tui/events"
	tuitheme "tableflip.dev/bookshelf/pkg/tui/theme"
	"tableflip.dev/bookshelf/pkg/tui/ui"
)

var choices = []struct {
	name  theme.Name
	label string
}{
	{theme.Day, "Day"},
	{theme.Night, "Night"},
}

// Model is the settings overlay.
type Model struct {
	id     events.ComponentID
	theme  tuitheme.Theme
	width  int
	cursor int
}

var _ ui.Overlay = (*Model)(nil)

// New preselects the theme currently applied.
func New(current theme.Name, th tuitheme.Theme) *Model {
	m := &Model{id: events.ComponentID("settings"), theme: th, width: 36}
	for i, c := range choices {
		if c.name == current {
			m.cursor = i
		}
	}
	return m
}

// Init implements ui.Overlay.
func (m *Model) Init() tea.Cmd { return nil }

// Form returns the selected theme keyed by field name.
func (m *Model) Form() map[string]string {
	return map[string]string{browser.FieldTheme: string(choices[m.cursor].name)}
}

// Update moves the selection, submits on enter and cancels on esc.
func (m *Model) Update(msg tea.Msg) (ui.Overlay, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc":
		return nil, events.SettingsCancelCmd(m.id)
	case "enter":
		return nil, events.SettingsSubmitCmd(m.id, m.Form())
	case "up", "k", "left", "h", "shift+tab":
		m.cursor = (m.cursor + len(choices) - 1) % len(choices)
	case "down", "j", "right", "l", "tab":
		m.cursor = (m.cursor + 1) % len(choices)
	case "d":
		m.cursor = 0
	case "n":
		m.cursor = 1
	}
	return m, nil
}

// View renders the radio list.
func (m *Model) View() string {
	st := m.theme.Modal
	rows := []string{st.Title.Render("Settings"), "", st.Label.Render("Theme")}
	for i, c := range choices {
		mark := "( )"
		style := st.Value
		if i == m.cursor {
			mark = "(•)"
			style = st.Selected
		}
		rows = append(rows, "  "+style.Render(mark+" "+c.label))
	}
	rows = append(rows, "", st.Help.Render("↑/↓ choose • enter save • esc cancel"))
	return st.Frame.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// SetSize implements ui.Overlay.
func (m *Model) SetSize(width, _ int) {
	m.width = min(36, max(24, width-8))
}

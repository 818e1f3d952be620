// Package detailpane renders the full-detail overlay for one book.
package detailpane

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/bookshelf/pkg/browser"
	"tableflip.dev/bookshelf/pkg/tui/events"
	tuitheme "tableflip.dev/bookshelf/pkg/tui/theme"
	"tableflip.dev/bookshelf/pkg/tui/ui"
)

// Model shows the title, subtitle, cover reference and a scrollable
// description.
type Model struct {
	id     events.ComponentID
	detail browser.Detail
	theme  tuitheme.Theme

	width  int
	height int
	body   viewport.Model
}

var _ ui.Overlay = (*Model)(nil)

// New builds the overlay for a populated detail.
func New(d browser.Detail, th tuitheme.Theme) *Model {
	m := &Model{
		id:     events.ComponentID("detail"),
		detail: d,
		theme:  th,
		body:   viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
	}
	m.SetSize(80, 24)
	return m
}

// Detail returns the book detail being shown.
func (m *Model) Detail() browser.Detail { return m.detail }

// Init implements ui.Overlay.
func (m *Model) Init() tea.Cmd { return nil }

// Update closes on esc, enter or q and scrolls the description otherwise.
func (m *Model) Update(msg tea.Msg) (ui.Overlay, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc", "enter", "q", "backspace":
			return nil, events.DetailCloseCmd(m.id)
		}
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

// View renders the overlay.
func (m *Model) View() string {
	st := m.theme.Detail
	inner := m.innerWidth()
	head := []string{
		st.Title.Render(wordwrap.String(m.detail.Title, inner)),
		st.Subtitle.Render(m.detail.Subtitle),
	}
	if m.detail.Image != "" {
		head = append(head, st.Image.Render("▥ "+m.detail.Image))
	}
	head = append(head, "")
	rows := append(head, m.body.View(), "", st.Help.Render("↑/↓ scroll • esc close"))
	return st.Frame.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// SetSize fits the overlay inside the terminal and rewraps the description.
func (m *Model) SetSize(width, height int) {
	m.width = min(max(width-6, 30), 90)
	m.height = max(height-4, 10)
	inner := m.innerWidth()
	chrome := 6 + m.theme.Detail.Frame.GetVerticalFrameSize()
	if m.detail.Image != "" {
		chrome++
	}
	m.body.SetWidth(inner)
	m.body.SetHeight(max(m.height-chrome, 3))
	m.body.SetContent(m.theme.Detail.Description.Render(wrap(m.detail.Description, inner)))
	m.body.SetYOffset(0)
}

func (m *Model) innerWidth() int {
	return max(m.width-m.theme.Detail.Frame.GetHorizontalFrameSize(), 10)
}

func wrap(text string, width int) string {
	paras := strings.Split(strings.TrimSpace(text), "\n")
	for i, p := range paras {
		paras[i] = wordwrap.String(strings.TrimSpace(p), width)
	}
	return strings.Join(paras, "\n")
}

package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/bookshelf/pkg/theme"
	"tableflip.dev/bookshelf/pkg/tui/ui"
)

//go:embed help.md
var helpMarkdown string

// CloseMsg is emitted when the help overlay is dismissed.
type CloseMsg struct{}

// Model renders the Glamour-based help overlay inside a bordered viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int
	style    string

	frame lipgloss.Style
	err   error
}

var _ ui.Overlay = (*Model)(nil)

// New constructs a help overlay sized to the provided bounds. Night themes
// use Glamour's dark style.
func New(width, height int, name theme.Name) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	style := "light"
	if name == theme.Night {
		style = "dark"
	}
	m := &Model{
		viewport: vp,
		style:    style,
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
	m.SetSize(width, height)
	return m
}

// Init implements ui.Overlay.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards scrolling to the viewport and closes on esc, q or ?.
func (m *Model) Update(msg tea.Msg) (ui.Overlay, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc", "q", "?":
			return nil, func() tea.Msg { return CloseMsg{} }
		}
	}
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the help content inside a rounded frame.
func (m *Model) View() string {
	body := m.viewport.View()
	if body == "" && m.err != nil {
		body = "help unavailable: " + m.err.Error()
	}
	return m.frame.Width(m.width).Height(m.height).Render(body)
}

// SetSize configures the overlay dimensions and re-renders the markdown to fit.
func (m *Model) SetSize(width, height int) {
	width = min(max(width-8, 32), 72)
	height = max(height-4, 8)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	innerWidth := max(width-m.frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.frame.GetVerticalFrameSize(), 1)
	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)
	m.render(innerWidth)
}

func (m *Model) render(wrap int) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(max(wrap-2, 10)),
	)
	if err == nil {
		var content string
		content, err = renderer.Render(strings.TrimSpace(helpMarkdown))
		if err == nil {
			m.err = nil
			m.viewport.SetContent(content)
			m.viewport.SetYOffset(0)
			return
		}
	}
	m.err = err
	m.viewport.SetContent("help unavailable: " + err.Error())
}

// Package searchform implements the search overlay: a title text field and
// author/genre selectors.
package searchform

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/search"
	tuitheme "tableflip.dev/bookshelf/pkg/tui/theme"
	"tableflip.dev/bookshelf/pkg/tui/events"
	"tableflip.dev/bookshelf/pkg/tui/ui"
)

type focusField int

const (
	fieldTitle focusField = iota
	fieldAuthor
	fieldGenre
	fieldCount
)

// Option is a selectable value with a display label.
type Option = catalog.Option

// Model is the search overlay.
type Model struct {
	id    events.ComponentID
	theme tuitheme.Theme

	width int
	focus focusField

	title   textinput.Model
	authors selector
	genres  selector
}

var _ ui.Overlay = (*Model)(nil)

// New builds the form with the catalog's author and genre options,
// prefilled from the criteria currently applied.
func New(store *catalog.Store, current search.Criteria, th tuitheme.Theme) *Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "Any title"
	in.SetValue(current.Title)

	m := &Model{
		id:      events.ComponentID("search"),
		theme:   th,
		title:   in,
		authors: newSelector("All Authors", store.AuthorOptions()),
		genres:  newSelector("All Genres", store.GenreOptions()),
	}
	m.authors.selectValue(current.Author)
	m.genres.selectValue(current.Genre)
	m.SetSize(80, 24)
	return m
}

// Init focuses the title field.
func (m *Model) Init() tea.Cmd {
	return m.title.Focus()
}

// Form returns the current field values keyed by form field name.
func (m *Model) Form() map[string]string {
	return map[string]string{
		search.FieldTitle:  m.title.Value(),
		search.FieldAuthor: m.authors.value(),
		search.FieldGenre:  m.genres.value(),
	}
}

// Update handles key input. Enter submits, esc cancels.
func (m *Model) Update(msg tea.Msg) (ui.Overlay, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		return m, cmd
	}
	switch key.String() {
	case "esc":
		return nil, events.SearchCancelCmd(m.id)
	case "enter":
		return nil, events.SearchSubmitCmd(m.id, m.Form())
	case "tab", "down":
		return m, m.advanceFocus(1)
	case "shift+tab", "up":
		return m, m.advanceFocus(-1)
	case "left":
		if m.focus != fieldTitle {
			m.current().move(-1)
			return m, nil
		}
	case "right":
		if m.focus != fieldTitle {
			m.current().move(1)
			return m, nil
		}
	}
	if m.focus != fieldTitle {
		return m, nil
	}
	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	return m, cmd
}

// View renders the form.
func (m *Model) View() string {
	st := m.theme.Modal
	rows := []string{
		st.Title.Render("Search"),
		"",
		m.row("Title", m.title.View(), m.focus == fieldTitle),
		m.row("Author", m.authors.view(st, m.focus == fieldAuthor), m.focus == fieldAuthor),
		m.row("Genre", m.genres.view(st, m.focus == fieldGenre), m.focus == fieldGenre),
		"",
		st.Help.Render("tab next • ←/→ choose • enter search • esc cancel"),
	}
	return st.Frame.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// SetSize sizes the modal relative to the terminal.
func (m *Model) SetSize(width, height int) {
	w := width - 8
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	m.width = w
	m.title.SetWidth(max(10, w-16))
}

func (m *Model) row(label, value string, focused bool) string {
	st := m.theme.Modal
	l := st.Label
	if focused {
		l = st.Focused
	}
	return l.Width(9).Render(label) + " " + value
}

func (m *Model) current() *selector {
	if m.focus == fieldAuthor {
		return &m.authors
	}
	return &m.genres
}

func (m *Model) advanceFocus(delta int) tea.Cmd {
	m.focus = (m.focus + fieldCount + focusField(delta)) % fieldCount
	if m.focus == fieldTitle {
		return m.title.Focus()
	}
	m.title.Blur()
	return nil
}

type selector struct {
	options []Option
	index   int
}

func newSelector(anyLabel string, opts []Option) selector {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, Option{Value: search.Any, Label: anyLabel})
	all = append(all, opts...)
	return selector{options: all}
}

func (s *selector) selectValue(v string) {
	for i, o := range s.options {
		if o.Value == v {
			s.index = i
			return
		}
	}
	s.index = 0
}

func (s *selector) move(delta int) {
	n := len(s.options)
	s.index = (s.index + n + delta) % n
}

func (s selector) value() string { return s.options[s.index].Value }

func (s selector) label() string { return s.options[s.index].Label }

func (s selector) view(st tuitheme.ModalTheme, focused bool) string {
	if !focused {
		return st.Value.Render(s.label())
	}
	return st.Selected.Render("‹ " + s.label() + " ›")
}

// Package teaui hosts the Bubble Tea program for the bookshelf TUI.
package teaui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/bookshelf/pkg/book"
	"tableflip.dev/bookshelf/pkg/browser"
	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/theme"
	"tableflip.dev/bookshelf/pkg/tui/components/bookpreview"
	"tableflip.dev/bookshelf/pkg/tui/components/help"
	"tableflip.dev/bookshelf/pkg/tui/events"
	tuitheme "tableflip.dev/bookshelf/pkg/tui/theme"
	"tableflip.dev/bookshelf/pkg/tui/ui"
	"tableflip.dev/bookshelf/pkg/tui/ui/overlay"
)

const (
	headerRows   = 2
	footerRows   = 3
	minCardWidth = 36
)

// Options configure the TUI.
type Options struct {
	PageSize int
	Theme    theme.Name
	Logger   *slog.Logger
}

// Model is the root Bubble Tea model. It renders the browser controller's
// surface: the book list, the show-more footer and the open overlay.
type Model struct {
	ctrl  *browser.Controller
	store *catalog.Store
	log   *slog.Logger
	theme tuitheme.Theme
	keys  KeyMap

	width  int
	height int

	items  []bookpreview.Item
	cursor int
	offset int

	noResults     bool
	moreRemaining int
	moreEnabled   bool

	overlay ui.Overlay
	detail  browser.Detail

	pending []tea.Cmd
}

var _ browser.Surface = (*Model)(nil)

// New builds the model and renders the initial catalog page.
func New(store *catalog.Store, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := &Model{
		store:  store,
		log:    logger.With("component", "tui"),
		theme:  tuitheme.Default(),
		keys:   DefaultKeyMap(),
		width:  80,
		height: 24,
	}
	m.ctrl = browser.New(store, m, browser.Options{PageSize: opts.PageSize, Logger: logger})
	m.ctrl.Start(opts.Theme)
	return m
}

// Controller exposes the browser controller driving the model.
func (m *Model) Controller() *browser.Controller { return m.ctrl }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.drain()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.overlay != nil {
			m.overlay.SetSize(m.width, m.height)
		}
		m.clampScroll()
		return m, nil
	case events.SearchSubmitMsg:
		m.log.Debug("search submitted", "form", msg.Describe())
		m.ctrl.SubmitSearch(msg.Form)
	case events.SearchCancelMsg:
		m.ctrl.CancelSearch()
	case events.SettingsSubmitMsg:
		m.log.Debug("settings submitted", "form", msg.Describe())
		m.ctrl.SubmitSettings(msg.Form)
	case events.SettingsCancelMsg:
		m.ctrl.CancelSettings()
	case events.DetailCloseMsg:
		m.ctrl.CloseDetail()
	case help.CloseMsg:
		if _, ok := m.overlay.(*help.Model); ok {
			m.overlay = nil
		}
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.overlay != nil {
			m.routeOverlay(msg)
			break
		}
		if m.ctrl.Overlay() != browser.OverlayNone {
			// the overlay has closed itself and its event is in flight
			break
		}
		if cmd := m.handleKey(msg); cmd != nil {
			m.pending = append(m.pending, cmd)
		}
	default:
		if m.overlay != nil {
			m.routeOverlay(msg)
		}
	}
	return m, m.drain()
}

func (m *Model) routeOverlay(msg tea.Msg) {
	next, cmd := m.overlay.Update(msg)
	if next == nil {
		m.overlay = nil
	}
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Search):
		m.ctrl.OpenSearch()
	case key.Matches(msg, k.Settings):
		m.ctrl.OpenSettings()
	case key.Matches(msg, k.Help):
		m.overlay = help.New(m.width, m.height, m.ctrl.Theme())
	case key.Matches(msg, k.More):
		m.ctrl.ShowMore()
	case key.Matches(msg, k.Open):
		if it, ok := m.Selected(); ok {
			m.ctrl.ClickItem(it.ID)
		}
	case key.Matches(msg, k.Down):
		m.moveCursor(m.columns())
	case key.Matches(msg, k.Up):
		m.moveCursor(-m.columns())
	case key.Matches(msg, k.Right):
		m.moveCursor(1)
	case key.Matches(msg, k.Left):
		m.moveCursor(-1)
	case key.Matches(msg, k.PageDown):
		m.moveCursor(m.columns() * m.visibleRows())
	case key.Matches(msg, k.PageUp):
		m.moveCursor(-m.columns() * m.visibleRows())
	case key.Matches(msg, k.Top):
		m.cursor = 0
		m.clampScroll()
	case key.Matches(msg, k.Bottom):
		m.cursor = max(len(m.items)-1, 0)
		m.clampScroll()
	}
	return nil
}

// Selected returns the item under the cursor.
func (m *Model) Selected() (bookpreview.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return bookpreview.Item{}, false
	}
	return m.items[m.cursor], true
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.renderList(), m.renderFooter())
	screen := m.theme.Base.Width(m.width).Height(m.height).MaxHeight(m.height).Render(body)
	if m.overlay == nil {
		return screen
	}
	return overlay.Compose(screen, m.width, m.height, m.overlay.View(), overlay.Centered())
}

func (m *Model) renderHeader() string {
	hint := fmt.Sprintf("%d of %d", len(m.items), len(m.ctrl.Matches()))
	if c := m.ctrl.Criteria(); !c.IsAll() {
		hint += " · " + describeCriteria(m.store, c.Title, c.Author, c.Genre)
	}
	title := m.theme.Header.Title.Render("Bookshelf")
	return title + "  " + m.theme.Header.Hint.Render(hint) + "\n"
}

func (m *Model) renderList() string {
	rows := m.visibleRows()
	if m.noResults {
		msg := m.theme.Footer.Message.Render("No books match your search.")
		return lipgloss.NewStyle().Height(rows * bookpreview.Height).Render(msg)
	}
	cols := m.columns()
	cardWidth := m.width / cols
	var lines []string
	for r := m.offset; r < m.offset+rows; r++ {
		var cards []string
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if idx >= len(m.items) {
				break
			}
			cards = append(cards, bookpreview.Render(m.items[idx], cardWidth, idx == m.cursor, m.theme))
		}
		if len(cards) == 0 {
			break
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.NewStyle().Height(rows * bookpreview.Height).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	st := m.theme.Footer
	var more string
	switch {
	case m.moreEnabled:
		more = st.Button.Render("[ Show more ]") + " " + st.Remaining.Render(fmt.Sprintf("(%d)", m.moreRemaining))
	case !m.noResults:
		more = st.ButtonDisabled.Render("All books shown")
	}
	var hints []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	keys := st.Help.Render(strings.Join(hints, " · "))
	return lipgloss.JoinVertical(lipgloss.Left, "", more, keys)
}

func (m *Model) columns() int {
	return max(m.width/minCardWidth, 1)
}

func (m *Model) visibleRows() int {
	return max((m.height-headerRows-footerRows)/bookpreview.Height, 1)
}

func (m *Model) moveCursor(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.items)-1)
	m.clampScroll()
}

func (m *Model) clampScroll() {
	cols, rows := m.columns(), m.visibleRows()
	row := m.cursor / cols
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+rows {
		m.offset = row - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) drain() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

func describeCriteria(store *catalog.Store, title, author, genre string) string {
	var parts []string
	if t := strings.TrimSpace(title); t != "" {
		parts = append(parts, fmt.Sprintf("title %q", t))
	}
	if store.HasAuthor(author) {
		parts = append(parts, "by "+store.AuthorName(author))
	}
	if store.HasGenre(genre) {
		parts = append(parts, "in "+store.GenreName(genre))
	}
	return strings.Join(parts, " ")
}

// Run launches the interactive TUI program. It returns when the user quits
// or ctx is cancelled.
func Run(ctx context.Context, store *catalog.Store, opts Options) error {
	p := tea.NewProgram(New(store, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func authorFor(store *catalog.Store, b book.Book) string {
	return store.AuthorName(b.Author)
}

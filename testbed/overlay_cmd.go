package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/browser"
	"tableflip.dev/bookshelf/pkg/search"
	"tableflip.dev/bookshelf/pkg/tui/components/detailpane"
	"tableflip.dev/bookshelf/pkg/tui/components/help"
	"tableflip.dev/bookshelf/pkg/tui/components/searchform"
	"tableflip.dev/bookshelf/pkg/tui/components/settingsform"
	"tableflip.dev/bookshelf/pkg/tui/ui"
)

func newOverlayCmd(opts *options, kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHarness(*opts)
			if err != nil {
				return err
			}
			m := &overlayModel{harness: h, kind: kind}
			m.mount()
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// overlayModel remounts its overlay whenever the overlay closes itself, so
// submit and cancel can be exercised repeatedly.
type overlayModel struct {
	harness
	kind    string
	overlay ui.Overlay
}

func (m *overlayModel) mount() {
	width, height := m.innerWidth, m.innerHeight
	if width <= 0 || height <= 0 {
		width, height = 72, 18
	}
	switch m.kind {
	case "search":
		m.overlay = searchform.New(m.store, search.All(), m.theme)
	case "settings":
		m.overlay = settingsform.New(m.name, m.theme)
	case "detail":
		b := m.store.Books()[0]
		m.overlay = detailpane.New(browser.Detail{
			BookID:      b.ID,
			Image:       b.Image,
			Title:       b.Title,
			Subtitle:    b.Subtitle(m.store.AuthorName(b.Author)),
			Description: b.Description,
		}, m.theme)
	case "help":
		m.overlay = help.New(width, height, m.name)
	}
	m.overlay.SetSize(width, height)
}

func (m *overlayModel) Init() tea.Cmd { return m.overlay.Init() }

func (m *overlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.harness.update(msg)}
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		m.overlay.SetSize(m.innerWidth, m.innerHeight)
	}
	next, cmd := m.overlay.Update(msg)
	cmds = append(cmds, cmd)
	if next == nil {
		m.mount()
		cmds = append(cmds, m.overlay.Init())
	}
	return m, tea.Batch(cmds...)
}

func (m *overlayModel) View() string {
	return m.compose(m.overlay.View())
}

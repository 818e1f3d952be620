package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/tui/components/bookpreview"
)

func newGridCmd(opts *options) *cobra.Command {
	var cardWidth int

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Render book preview cards; arrows move the selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHarness(*opts)
			if err != nil {
				return err
			}
			m := &gridModel{harness: h, cardWidth: cardWidth}
			for _, b := range h.store.Books() {
				m.items = append(m.items, bookpreview.FromBook(b, h.store.AuthorName(b.Author)))
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&cardWidth, "card-width", 36, "width of a single card")
	return cmd
}

type gridModel struct {
	harness
	cardWidth int
	items     []bookpreview.Item
	cursor    int
}

func (m *gridModel) Init() tea.Cmd { return nil }

func (m *gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.harness.update(msg)
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "q":
			return m, tea.Quit
		case "left", "h", "up", "k":
			m.cursor = max(m.cursor-1, 0)
		case "right", "l", "down", "j":
			m.cursor = min(m.cursor+1, len(m.items)-1)
		}
	}
	return m, cmd
}

func (m *gridModel) View() string {
	cols := max(1, m.innerWidth/m.cardWidth)
	rows := max(1, m.innerHeight/bookpreview.Height)
	start := (m.cursor / (cols * rows)) * cols * rows

	var lines []string
	for r := 0; r < rows; r++ {
		var row []string
		for c := 0; c < cols; c++ {
			i := start + r*cols + c
			if i >= len(m.items) {
				break
			}
			row = append(row, bookpreview.Render(m.items[i], m.cardWidth, i == m.cursor, m.theme))
		}
		if len(row) == 0 {
			break
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return m.compose(strings.Join(lines, "\n"))
}

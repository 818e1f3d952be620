// Package bookpreview renders the compact card shown for each book in the
// list. Rendering is a pure function of its inputs.
package bookpreview

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/bookshelf/pkg/book"
	tuitheme "tableflip.dev/bookshelf/pkg/tui/theme"
)

// Height is the number of terminal rows a rendered card occupies.
const Height = 4

const cover = "▥"

// Item is the data a card displays. ID is kept so that a selected card can
// be resolved back to its book through the catalog.
type Item struct {
	ID     string
	Title  string
	Author string
	Image  string
}

// FromBook builds an item, resolving the author id to a display name.
func FromBook(b book.Book, authorName string) Item {
	return Item{ID: b.ID, Title: b.Title, Author: authorName, Image: b.Image}
}

// Render draws the card at the given total width.
func Render(it Item, width int, selected bool, th tuitheme.Theme) string {
	frame := th.Preview.Frame
	if selected {
		frame = th.Preview.Selected
	}
	inner := width - frame.GetHorizontalFrameSize()
	if inner < 8 {
		inner = 8
	}
	text := inner - lipgloss.Width(cover) - 2

	title := th.Preview.Title.Render(ansi.Truncate(it.Title, text, "…"))
	author := th.Preview.Author.Render(ansi.Truncate(it.Author, text, "…"))
	body := lipgloss.JoinVertical(lipgloss.Left,
		th.Preview.Image.Render(cover)+"  "+title,
		"   "+author,
	)
	return frame.Width(inner + frame.GetHorizontalPadding()).Render(body)
}

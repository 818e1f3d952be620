package bookpreview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"

	tuitheme "tableflip.dev/bookshelf/pkg/tui/theme"
)

func TestRenderShowsTitleAndAuthor(t *testing.T) {
	it := Item{ID: "b1", Title: "Dune Messiah", Author: "Frank Herbert"}
	out := Render(it, 40, false, tuitheme.Default())
	plain := stripANSI(out)
	if !strings.Contains(plain, "Dune Messiah") || !strings.Contains(plain, "Frank Herbert") {
		t.Fatalf("card missing content: %q", plain)
	}
	if h := lipgloss.Height(out); h != Height {
		t.Fatalf("expected card height %d, got %d", Height, h)
	}
	if w := lipgloss.Width(out); w != 40 {
		t.Fatalf("expected card width 40, got %d", w)
	}
}

func TestRenderTruncatesLongTitles(t *testing.T) {
	it := Item{Title: strings.Repeat("long ", 30), Author: "someone"}
	out := Render(it, 30, true, tuitheme.Default())
	if lipgloss.Height(out) != Height {
		t.Fatalf("long title changed the card height")
	}
	if !strings.Contains(stripANSI(out), "…") {
		t.Fatalf("expected ellipsis in %q", stripANSI(out))
	}
}

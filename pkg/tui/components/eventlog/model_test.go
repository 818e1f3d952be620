package eventlog

import (
	"strings"
	"testing"
	"time"

	tuitheme "tableflip.dev/bookshelf/pkg/tui/theme"
)

func TestAppendNewestFirstAndCapped(t *testing.T) {
	m := New(2, tuitheme.Default())
	for _, s := range []string{"one", "two", "three"} {
		m.Append(Entry{Summary: s})
	}
	got := m.Entries()
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Summary != "three" || got[1].Summary != "two" {
		t.Fatalf("unexpected order %+v", got)
	}
	if got[0].Source != "tea" || got[0].At.IsZero() {
		t.Fatalf("expected defaults to be filled, got %+v", got[0])
	}
}

func TestView(t *testing.T) {
	m := New(10, tuitheme.Default())
	if m.View() != "" {
		t.Fatal("expected an empty view before sizing")
	}
	m.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	m.SetSize(60, 6)
	if !strings.Contains(m.View(), "No events yet") {
		t.Fatalf("expected placeholder, got:\n%s", m.View())
	}
	m.Append(Entry{Source: "search", Summary: "SearchSubmitMsg", Detail: `title:"dune"`})
	view := m.View()
	for _, want := range []string{"Events", "03:04:05.000", "[search]", "SearchSubmitMsg"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

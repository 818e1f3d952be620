package book

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestSubtitleUsesPublicationYear(t *testing.T) {
	b := Book{
		ID:        "b1",
		Title:     "Dune Messiah",
		Author:    "a1",
		Published: Published{Time: time.Date(1969, time.October, 15, 0, 0, 0, 0, time.UTC)},
	}
	if got := b.Subtitle("Frank Herbert"); got != "Frank Herbert (1969)" {
		t.Fatalf("unexpected subtitle %q", got)
	}
}

func TestPublishedAcceptsFractionalSeconds(t *testing.T) {
	var b Book
	raw := `{"id":"x","title":"T","author":"a","published":"2016-07-01T00:00:00.000Z","genres":["g1"]}`
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.Year() != 2016 {
		t.Fatalf("expected 2016, got %d", b.Year())
	}
	if !b.HasGenre("g1") || b.HasGenre("g2") {
		t.Fatalf("unexpected genre membership for %v", b.Genres)
	}
}

func TestPublishedRejectsGarbage(t *testing.T) {
	var p Published
	if err := json.Unmarshal([]byte(`"last tuesday"`), &p); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}

func TestLookupNameFallsBackToID(t *testing.T) {
	l := Lookup{"a1": "Ursula K. Le Guin"}
	if l.Name("a1") != "Ursula K. Le Guin" {
		t.Fatalf("expected display name")
	}
	if l.Name("zz") != "zz" {
		t.Fatalf("expected id fallback")
	}
	if l.Has("zz") {
		t.Fatalf("unexpected lookup hit")
	}
}

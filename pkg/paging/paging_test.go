package paging

import (
	"fmt"
	"math"
	"testing"

	"tableflip.dev/bookshelf/pkg/book"
)

func books(n int) []book.Book {
	out := make([]book.Book, n)
	for i := range out {
		out[i] = book.Book{ID: fmt.Sprintf("b%d", i)}
	}
	return out
}

func idsOf(bs []book.Book) string {
	s := ""
	for _, b := range bs {
		s += b.ID + " "
	}
	return s
}

func TestVisibleSliceClamps(t *testing.T) {
	m := books(5)
	if got := idsOf(VisibleSlice(m, 1, 2)); got != "b0 b1 " {
		t.Fatalf("page 1: %q", got)
	}
	if got := idsOf(VisibleSlice(m, 3, 2)); got != "b4 " {
		t.Fatalf("page 3: %q", got)
	}
	if got := VisibleSlice(m, 4, 2); len(got) != 0 {
		t.Fatalf("page 4 should be empty, got %d", len(got))
	}
	if got := VisibleSlice(m, 0, 2); len(got) != 0 {
		t.Fatalf("page 0 should be empty, got %d", len(got))
	}
	if got := VisibleSlice(nil, 1, 2); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice for no matches")
	}
}

func TestVisibleSliceIsIdempotent(t *testing.T) {
	m := books(7)
	a := VisibleSlice(m, 2, 3)
	b := VisibleSlice(m, 2, 3)
	if idsOf(a) != idsOf(b) {
		t.Fatalf("slices differ: %q vs %q", idsOf(a), idsOf(b))
	}
	a[0].ID = "mutated"
	if m[3].ID != "b3" {
		t.Fatalf("VisibleSlice aliases the input")
	}
}

func TestRemainingCountNeverNegative(t *testing.T) {
	m := books(5)
	for page := 0; page < 6; page++ {
		if got := RemainingCount(m, page, 2); got < 0 {
			t.Fatalf("page %d: negative remaining %d", page, got)
		}
	}
	if got := RemainingCount(m, 1, 2); got != 3 {
		t.Fatalf("expected 3 remaining, got %d", got)
	}
}

func TestPages(t *testing.T) {
	if Pages(books(5), 2) != 3 {
		t.Fatalf("expected 3 pages")
	}
	if Pages(nil, 2) != 1 {
		t.Fatalf("empty list should have one page")
	}
}

func TestShowMoreWalksPages(t *testing.T) {
	m := books(5)
	s := New(2)
	if got := idsOf(s.Current(m)); got != "b0 b1 " {
		t.Fatalf("first page: %q", got)
	}

	revealed, ok := s.ShowMore(m)
	if !ok || s.Page != 2 || idsOf(revealed) != "b2 b3 " || s.Remaining(m) != 1 {
		t.Fatalf("after first show more: ok=%t page=%d revealed=%q remaining=%d", ok, s.Page, idsOf(revealed), s.Remaining(m))
	}

	revealed, ok = s.ShowMore(m)
	if !ok || s.Page != 3 || idsOf(revealed) != "b4 " || s.Remaining(m) != 0 {
		t.Fatalf("after second show more: ok=%t page=%d revealed=%q remaining=%d", ok, s.Page, idsOf(revealed), s.Remaining(m))
	}
	if s.HasMore(m) {
		t.Fatalf("expected no more pages")
	}
	if got := idsOf(s.Visible(m)); got != "b0 b1 b2 b3 b4 " {
		t.Fatalf("visible: %q", got)
	}
}

func TestShowMoreIsNoopWhenExhausted(t *testing.T) {
	m := books(2)
	s := New(2)
	revealed, ok := s.ShowMore(m)
	if ok || revealed != nil || s.Page != 1 {
		t.Fatalf("expected no-op, got ok=%t page=%d", ok, s.Page)
	}
}

func TestResetReturnsToFirstPage(t *testing.T) {
	s := State{Page: 4, Size: 2}
	s.Reset()
	if s.Page != 1 {
		t.Fatalf("expected page 1, got %d", s.Page)
	}
}

func TestHugePagesAndSizes(t *testing.T) {
	m := books(5)
	for _, tc := range []struct{ page, size int }{
		{math.MaxInt, 36},
		{math.MaxInt/36*2, 36},
		{math.MaxInt, math.MaxInt},
		{2, math.MaxInt},
		{1 << 62, 4},
	} {
		if got := VisibleSlice(m, tc.page, tc.size); len(got) != 0 {
			t.Fatalf("page %d size %d: expected no books, got %d", tc.page, tc.size, len(got))
		}
		if got := RemainingCount(m, tc.page, tc.size); got != 0 {
			t.Fatalf("page %d size %d: expected 0 remaining, got %d", tc.page, tc.size, got)
		}
	}

	if got := idsOf(VisibleSlice(m, 1, math.MaxInt)); got != "b0 b1 b2 b3 b4 " {
		t.Fatalf("first page of a huge size: %q", got)
	}
	if got := RemainingCount(m, 1, math.MaxInt); got != 0 {
		t.Fatalf("expected 0 remaining, got %d", got)
	}
	if got := Pages(m, math.MaxInt); got != 1 {
		t.Fatalf("expected 1 page, got %d", got)
	}
}

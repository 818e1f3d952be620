// Package paging slices a match list into fixed-size, append-only pages.
package paging

import "tableflip.dev/bookshelf/pkg/book"

// VisibleSlice returns matches[(page-1)*size : page*size] clamped to bounds.
// Pages past the end, and non-positive pages or sizes, yield an empty slice.
func VisibleSlice(matches []book.Book, page, size int) []book.Book {
	if page < 1 || size < 1 || page > pages(len(matches), size) {
		return []book.Book{}
	}
	// page is at most pages(n, size), so start is below len(matches)
	start := (page - 1) * size
	end := start + min(size, len(matches)-start)
	out := make([]book.Book, end-start)
	copy(out, matches[start:end])
	return out
}

// RemainingCount is the number of matches beyond the first page pages.
// It is never negative.
func RemainingCount(matches []book.Book, page, size int) int {
	if page < 1 || size < 1 {
		return len(matches)
	}
	if page >= pages(len(matches), size) {
		return 0
	}
	return len(matches) - page*size
}

// Pages returns how many pages matches spans; an empty list still has one.
func Pages(matches []book.Book, size int) int {
	if size < 1 || len(matches) == 0 {
		return 1
	}
	return pages(len(matches), size)
}

// pages is ceil(n/size) for size >= 1, computed without overflow.
func pages(n, size int) int {
	if n == 0 {
		return 0
	}
	return (n-1)/size + 1
}

// State tracks how many pages of the current matches are revealed.
type State struct {
	Page int
	Size int
}

// New returns a state on page 1.
func New(size int) State {
	if size < 1 {
		size = 1
	}
	return State{Page: 1, Size: size}
}

// Reset returns to page 1. Called whenever the matches change.
func (s *State) Reset() {
	s.Page = 1
}

// Visible returns every revealed match, pages 1 through s.Page.
func (s State) Visible(matches []book.Book) []book.Book {
	return VisibleSlice(matches, 1, s.Page*s.Size)
}

// Current returns the most recently revealed page.
func (s State) Current(matches []book.Book) []book.Book {
	return VisibleSlice(matches, s.Page, s.Size)
}

// Remaining is RemainingCount for the current page.
func (s State) Remaining(matches []book.Book) int {
	return RemainingCount(matches, s.Page, s.Size)
}

// HasMore reports whether ShowMore would reveal anything.
func (s State) HasMore(matches []book.Book) bool {
	return s.Remaining(matches) > 0
}

// ShowMore advances one page and returns the newly revealed books. When
// nothing remains it leaves the page unchanged and reports false.
func (s *State) ShowMore(matches []book.Book) ([]book.Book, bool) {
	if !s.HasMore(matches) {
		return nil, false
	}
	s.Page++
	return s.Current(matches), true
}

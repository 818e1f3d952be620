// Package book defines the immutable book record shared by every surface.
package book

import (
	"fmt"
	"strings"
)

// Book is a single catalog record. Author and Genres hold lookup ids, not
// display names.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Published   Published `json:"published"`
	Genres      []string  `json:"genres"`
}

// Year returns the publication year, or 0 when the date is unknown.
func (b Book) Year() int {
	if b.Published.IsZero() {
		return 0
	}
	return b.Published.UTC().Year()
}

// HasGenre reports whether the book is tagged with the genre id.
func (b Book) HasGenre(genre string) bool {
	for _, g := range b.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Subtitle renders the "{author} ({year})" line used by detail views.
func (b Book) Subtitle(authorName string) string {
	return fmt.Sprintf("%s (%d)", authorName, b.Year())
}

func (b Book) String() string {
	return fmt.Sprintf("%s  %s", b.ID, strings.TrimSpace(b.Title))
}

// Lookup maps an id to a display name. Used for authors and genres.
type Lookup map[string]string

// Name returns the display name for id, falling back to the id itself.
func (l Lookup) Name(id string) string {
	if name, ok := l[id]; ok {
		return name
	}
	return id
}

// Has reports whether id is present.
func (l Lookup) Has(id string) bool {
	_, ok := l[id]
	return ok
}

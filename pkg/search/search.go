// Package search filters the catalog by title, author and genre.
package search

import (
	"fmt"
	"strings"

	"tableflip.dev/bookshelf/pkg/book"
)

// Any is the sentinel that disables the author or genre predicate.
const Any = "any"

// Form field names submitted by search forms.
const (
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldGenre  = "genre"
)

// Criteria selects books. The zero value is not valid: use All or
// CriteriaFromForm so that Author and Genre hold Any when unset.
type Criteria struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// All matches every book.
func All() Criteria {
	return Criteria{Author: Any, Genre: Any}
}

// CriteriaFromForm builds criteria from raw form fields. Missing or blank
// author and genre become Any and a missing title becomes empty.
func CriteriaFromForm(form map[string]string) Criteria {
	c := All()
	if form == nil {
		return c
	}
	c.Title = form[FieldTitle]
	if v := strings.TrimSpace(form[FieldAuthor]); v != "" {
		c.Author = v
	}
	if v := strings.TrimSpace(form[FieldGenre]); v != "" {
		c.Genre = v
	}
	return c
}

// Form is the inverse of CriteriaFromForm.
func (c Criteria) Form() map[string]string {
	return map[string]string{
		FieldTitle:  c.Title,
		FieldAuthor: c.Author,
		FieldGenre:  c.Genre,
	}
}

// Validate fails fast on structurally invalid criteria.
func (c Criteria) Validate() error {
	if c.Author == "" {
		return fmt.Errorf("search: author is empty, use %q to match any author", Any)
	}
	if c.Genre == "" {
		return fmt.Errorf("search: genre is empty, use %q to match any genre", Any)
	}
	return nil
}

// IsAll reports whether the criteria match the whole catalog.
func (c Criteria) IsAll() bool {
	return strings.TrimSpace(c.Title) == "" && c.Author == Any && c.Genre == Any
}

func (c Criteria) String() string {
	return fmt.Sprintf("title=%q author=%s genre=%s", strings.TrimSpace(c.Title), c.Author, c.Genre)
}

// Match reports whether b satisfies all three predicates.
func Match(b book.Book, c Criteria) bool {
	return matchTitle(b, normalizeTitle(c.Title)) &&
		(c.Author == Any || b.Author == c.Author) &&
		(c.Genre == Any || b.HasGenre(c.Genre))
}

// Filter returns the books matching c, in their original relative order.
func Filter(books []book.Book, c Criteria) []book.Book {
	title := normalizeTitle(c.Title)
	out := make([]book.Book, 0, len(books))
	for _, b := range books {
		if !matchTitle(b, title) {
			continue
		}
		if c.Author != Any && b.Author != c.Author {
			continue
		}
		if c.Genre != Any && !b.HasGenre(c.Genre) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func matchTitle(b book.Book, title string) bool {
	return title == "" || strings.Contains(strings.ToLower(b.Title), title)
}

package search

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAuthor is returned by Resolve for an author reference the
	// catalog does not know.
	ErrUnknownAuthor = errors.New("unknown author")
	// ErrUnknownGenre is returned by Resolve for an unknown genre.
	ErrUnknownGenre = errors.New("unknown genre")
)

// Resolver maps user-typed author and genre references, ids or names, to
// catalog ids.
type Resolver interface {
	FindAuthor(string) (string, bool)
	FindGenre(string) (string, bool)
}

// Resolve builds criteria from command-line style input. Blank or Any
// references match everything.
func Resolve(r Resolver, title, author, genre string) (Criteria, error) {
	c := All()
	c.Title = title
	if a := strings.TrimSpace(author); a != "" && !strings.EqualFold(a, Any) {
		id, ok := r.FindAuthor(a)
		if !ok {
			return c, fmt.Errorf("%w: %q", ErrUnknownAuthor, a)
		}
		c.Author = id
	}
	if g := strings.TrimSpace(genre); g != "" && !strings.EqualFold(g, Any) {
		id, ok := r.FindGenre(g)
		if !ok {
			return c, fmt.Errorf("%w: %q", ErrUnknownGenre, g)
		}
		c.Genre = id
	}
	return c, nil
}

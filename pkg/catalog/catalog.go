// Package catalog holds the immutable book catalog and its author and genre
// lookup tables.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"tableflip.dev/bookshelf/pkg/book"
)

//go:embed data/catalog.json
var embedded []byte

// DefaultPageSize mirrors the number of previews revealed per page.
const DefaultPageSize = 36

var (
	// ErrBookNotFound is returned when an id does not resolve to a book.
	ErrBookNotFound = errors.New("catalog: book not found")
	// ErrDuplicateID reports two books sharing an id.
	ErrDuplicateID = errors.New("catalog: duplicate book id")
	// ErrUnknownAuthor reports a book whose author id has no display name.
	ErrUnknownAuthor = errors.New("catalog: unknown author")
	// ErrUnknownGenre reports a book tagged with an undeclared genre.
	ErrUnknownGenre = errors.New("catalog: unknown genre")
)

// Option is a selectable id/name pair, as offered by search forms.
type Option struct {
	Value string `json:"id" yaml:"id"`
	Label string `json:"name" yaml:"name"`
}

// Store is the read-only catalog. It is safe for concurrent readers.
type Store struct {
	books   []book.Book
	byID    map[string]int
	authors book.Lookup
	genres  book.Lookup
}

type document struct {
	Books   []book.Book `json:"books"`
	Authors book.Lookup `json:"authors"`
	Genres  book.Lookup `json:"genres"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Store, error) {
	return Parse(embedded)
}

// Parse decodes a catalog document and validates it.
func Parse(data []byte) (*Store, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decoding: %w", err)
	}
	return New(doc.Books, doc.Authors, doc.Genres)
}

// New builds a Store. The books keep their given order, which is the order
// every unfiltered listing uses.
func New(books []book.Book, authors, genres book.Lookup) (*Store, error) {
	s := &Store{
		books:   make([]book.Book, len(books)),
		byID:    make(map[string]int, len(books)),
		authors: copyLookup(authors),
		genres:  copyLookup(genres),
	}
	for i, b := range books {
		if strings.TrimSpace(b.ID) == "" {
			return nil, fmt.Errorf("catalog: book %d (%q) has no id", i, b.Title)
		}
		if _, dup := s.byID[b.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, b.ID)
		}
		if !s.authors.Has(b.Author) {
			return nil, fmt.Errorf("%w: %q on book %s", ErrUnknownAuthor, b.Author, b.ID)
		}
		for _, g := range b.Genres {
			if !s.genres.Has(g) {
				return nil, fmt.Errorf("%w: %q on book %s", ErrUnknownGenre, g, b.ID)
			}
		}
		b.Genres = append([]string(nil), b.Genres...)
		s.books[i] = b
		s.byID[b.ID] = i
	}
	return s, nil
}

// Len returns the number of books.
func (s *Store) Len() int { return len(s.books) }

// Books returns the full catalog in original order. The slice is a copy.
func (s *Store) Books() []book.Book {
	out := make([]book.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Lookup resolves a book by id.
func (s *Store) Lookup(id string) (book.Book, bool) {
	i, ok := s.byID[id]
	if !ok {
		return book.Book{}, false
	}
	return s.books[i], true
}

// Book is Lookup for callers that want an error.
func (s *Store) Book(id string) (book.Book, error) {
	b, ok := s.Lookup(id)
	if !ok {
		return book.Book{}, fmt.Errorf("%w: %s", ErrBookNotFound, id)
	}
	return b, nil
}

// AuthorName returns the display name for an author id.
func (s *Store) AuthorName(id string) string { return s.authors.Name(id) }

// GenreName returns the display name for a genre id.
func (s *Store) GenreName(id string) string { return s.genres.Name(id) }

// HasAuthor reports whether id is a known author.
func (s *Store) HasAuthor(id string) bool { return s.authors.Has(id) }

// HasGenre reports whether id is a known genre.
func (s *Store) HasGenre(id string) bool { return s.genres.Has(id) }

// AuthorOptions lists every author ordered by display name.
func (s *Store) AuthorOptions() []Option { return options(s.authors) }

// GenreOptions lists every genre ordered by display name.
func (s *Store) GenreOptions() []Option { return options(s.genres) }

// GenreNames resolves the genre ids of b to display names.
func (s *Store) GenreNames(b book.Book) []string {
	names := make([]string, 0, len(b.Genres))
	for _, g := range b.Genres {
		names = append(names, s.genres.Name(g))
	}
	return names
}

// FindAuthor resolves an author given by id or, ignoring case, by name.
func (s *Store) FindAuthor(v string) (string, bool) { return find(s.authors, v) }

// FindGenre resolves a genre given by id or, ignoring case, by name.
func (s *Store) FindGenre(v string) (string, bool) { return find(s.genres, v) }

func find(l book.Lookup, v string) (string, bool) {
	v = strings.TrimSpace(v)
	if l.Has(v) {
		return v, true
	}
	for _, o := range options(l) {
		if strings.EqualFold(o.Label, v) {
			return o.Value, true
		}
	}
	return "", false
}

func options(l book.Lookup) []Option {
	out := make([]Option, 0, len(l))
	for id, name := range l {
		out = append(out, Option{Value: id, Label: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label == out[j].Label {
			return out[i].Value < out[j].Value
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func copyLookup(l book.Lookup) book.Lookup {
	out := make(book.Lookup, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

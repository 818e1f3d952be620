// Package mcp provides the Model Context Protocol server integration for
// bookshelf.
package mcp

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/paging"
	"tableflip.dev/bookshelf/pkg/printers"
	"tableflip.dev/bookshelf/pkg/search"
)

// Service answers catalog queries shared by the MCP tools and resources.
// The catalog is read-only, so a Service is safe for concurrent use.
type Service struct {
	Store *catalog.Store
}

// SearchOptions captures the parameters of a catalog search. Author and
// genre accept an id or a display name; empty means any.
type SearchOptions struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Genre    string `json:"genre"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// NewService builds a service over the provided catalog.
func NewService(store *catalog.Store) *Service {
	return &Service{Store: store}
}

// MaxPageSize caps the books returned by one search_books call.
const MaxPageSize = 100

// Search returns one page of the matching books.
func (s *Service) Search(ctx context.Context, opts SearchOptions) (printers.ResultView, error) {
	if s.Store == nil {
		return printers.ResultView{}, errors.New("catalog is not configured")
	}
	c, err := search.Resolve(s.Store, opts.Title, opts.Author, opts.Genre)
	if err != nil {
		return printers.ResultView{}, err
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}
	size := opts.PageSize
	if size < 1 {
		size = catalog.DefaultPageSize
	}
	size = min(size, MaxPageSize)

	matches := search.Filter(s.Store.Books(), c)
	visible := paging.VisibleSlice(matches, page, size)
	books := make([]printers.BookView, 0, len(visible))
	for _, b := range visible {
		books = append(books, printers.NewBookView(s.Store, b, false))
	}
	return printers.ResultView{
		Criteria:  c.Form(),
		Page:      page,
		PageSize:  size,
		Total:     len(matches),
		Remaining: paging.RemainingCount(matches, page, size),
		Books:     books,
	}, nil
}

// Book returns every field of one book.
func (s *Service) Book(ctx context.Context, id string) (printers.BookView, error) {
	if s.Store == nil {
		return printers.BookView{}, errors.New("catalog is not configured")
	}
	b, err := s.Store.Book(strings.TrimSpace(id))
	if err != nil {
		return printers.BookView{}, err
	}
	return printers.NewBookView(s.Store, b, true), nil
}

// Authors lists every author ordered by name.
func (s *Service) Authors(ctx context.Context) []catalog.Option {
	return s.Store.AuthorOptions()
}

// Genres lists every genre ordered by name.
func (s *Service) Genres(ctx context.Context) []catalog.Option {
	return s.Store.GenreOptions()
}

// Package show prints a single book.
package show

import (
	"context"
	"errors"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/printers"
)

// Show prints every field of the book with ID.
type Show struct {
	Store   *catalog.Store
	ID      string
	Printer *printers.Printer
}

// Do looks the book up and prints it.
func (s *Show) Do(ctx context.Context) error {
	if s.Store == nil {
		return errors.New("can not show, no catalog")
	}
	b, err := s.Store.Book(s.ID)
	if err != nil {
		return err
	}
	return s.Printer.Book(printers.NewBookView(s.Store, b, true))
}

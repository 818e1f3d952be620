// Package lookup lists the author and genre tables of the catalog.
package lookup

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/printers"
)

// Kind selects which table to list.
type Kind string

const (
	Authors Kind = "authors"
	Genres  Kind = "genres"
)

// Lookup prints one lookup table ordered by name.
type Lookup struct {
	Store   *catalog.Store
	Kind    Kind
	Printer *printers.Printer
}

// Do prints the table.
func (l *Lookup) Do(ctx context.Context) error {
	if l.Store == nil {
		return errors.New("can not list, no catalog")
	}
	switch l.Kind {
	case Authors:
		return l.Printer.Options("Authors", l.Store.AuthorOptions())
	case Genres:
		return l.Printer.Options("Genres", l.Store.GenreOptions())
	default:
		return fmt.Errorf("unknown lookup %q", l.Kind)
	}
}

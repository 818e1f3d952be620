// Package get runs catalog searches from the command line.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/paging"
	"tableflip.dev/bookshelf/pkg/printers"
	"tableflip.dev/bookshelf/pkg/search"
)

// Get prints one page of the books matching Criteria.
type Get struct {
	Store    *catalog.Store
	Criteria search.Criteria
	Page     int
	PageSize int
	Printer  *printers.Printer
}

// Do runs the search.
func (g *Get) Do(ctx context.Context) error {
	if g.Store == nil {
		return errors.New("can not search, no catalog")
	}
	if g.Page < 1 {
		return fmt.Errorf("page must be at least 1, got %d", g.Page)
	}
	if err := g.Criteria.Validate(); err != nil {
		return err
	}
	size := g.PageSize
	if size <= 0 {
		size = catalog.DefaultPageSize
	}

	matches := search.Filter(g.Store.Books(), g.Criteria)
	page := paging.VisibleSlice(matches, g.Page, size)

	views := make([]printers.BookView, 0, len(page))
	for _, b := range page {
		views = append(views, printers.NewBookView(g.Store, b, false))
	}
	return g.Printer.Results(printers.ResultView{
		Criteria:  g.Criteria.Form(),
		Page:      g.Page,
		PageSize:  size,
		Total:     len(matches),
		Remaining: paging.RemainingCount(matches, g.Page, size),
		Books:     views,
	})
}

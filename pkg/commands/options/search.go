package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/search"
)

// SearchOptions
type SearchOptions struct {
	Title    string
	Author   string
	Genre    string
	Page     int
	PageSize int
}

func AddSearchArgs(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "",
		"Case-insensitive text the title must contain.")
	cmd.Flags().StringVar(&o.Author, "author", search.Any,
		`Author id or name, "any" for every author.`)
	cmd.Flags().StringVar(&o.Genre, "genre", search.Any,
		`Genre id or name, "any" for every genre.`)
	cmd.Flags().IntVar(&o.Page, "page", 1,
		"Page of results to print, starting at 1.")
	cmd.Flags().IntVar(&o.PageSize, "page-size", 0,
		"Books per page. Defaults to page_size from the config.")
}

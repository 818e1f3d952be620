package commands

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/commands/options"
	"tableflip.dev/bookshelf/pkg/runner/get"
	"tableflip.dev/bookshelf/pkg/search"
)

func addSearch(topLevel *cobra.Command) {
	so := &options.SearchOptions{}
	oo := &options.OutputOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "search [title words]",
		Short: "print one page of books matching a title, author and genre",
		Example: `
bookshelf search dune
bookshelf search --author "Ursula K. Le Guin" --genre fantasy
bookshelf search --page 2 --page-size 10 -o json
bookshelf search -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				if so.Title != "" {
					return errors.New("title given both as argument and --title")
				}
				so.Title = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := oo.Printer(cmd)
			if err != nil {
				return err
			}
			e, err := loadEnv()
			if err != nil {
				return oo.HandleError(p, err)
			}
			cmd.SilenceUsage = true

			criteria, err := search.Resolve(e.store, so.Title, so.Author, so.Genre)
			if err != nil {
				return oo.HandleError(p, err)
			}
			if i.Interactive {
				if !isTerminal(os.Stdin) {
					return errors.New("--interactive needs a terminal")
				}
				if criteria, err = get.Prompt(e.store, criteria); err != nil {
					return err
				}
			}

			size := so.PageSize
			if size <= 0 {
				size = e.cfg.PageSize
			}
			g := get.Get{
				Store:    e.store,
				Criteria: criteria,
				Page:     so.Page,
				PageSize: size,
				Printer:  p,
			}
			logger.Debug("search", "criteria", criteria.String(), "page", so.Page, "page_size", size)
			return oo.HandleError(p, g.Do(cmd.Context()))
		},
	}

	options.AddSearchArgs(cmd, so)
	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, oo)
	options.InteractiveArgs(cmd, i)
	topLevel.AddCommand(cmd)
}

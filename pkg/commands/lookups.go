package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/commands/options"
	"tableflip.dev/bookshelf/pkg/runner/lookup"
)

func addLookups(topLevel *cobra.Command) {
	for _, kind := range []lookup.Kind{lookup.Authors, lookup.Genres} {
		addLookup(topLevel, kind)
	}
}

func addLookup(topLevel *cobra.Command, kind lookup.Kind) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   string(kind),
		Short: "list the " + string(kind) + " of the catalog",
		Example: `
bookshelf ` + string(kind) + ` --show-id
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := oo.Printer(cmd)
			if err != nil {
				return err
			}
			e, err := loadEnv()
			if err != nil {
				return oo.HandleError(p, err)
			}
			l := lookup.Lookup{Store: e.store, Kind: kind, Printer: p}
			return oo.HandleError(p, l.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/commands/options"
	"tableflip.dev/bookshelf/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "print every detail of one book",
		Example: `
bookshelf show 3f9c2d10
bookshelf show 3f9c2d10 -o yaml
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return bookCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
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
			s := show.Show{Store: e.store, ID: args[0], Printer: p}
			return oo.HandleError(p, s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/catalog"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(bookshelf completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(bookshelf completion)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

func bookCompletions(toComplete string) []string {
	store, err := catalog.Default()
	if err != nil {
		return nil
	}
	var ids []string
	for _, b := range store.Books() {
		if strings.HasPrefix(b.ID, toComplete) {
			ids = append(ids, b.ID+"\t"+b.Title)
		}
	}
	return ids
}

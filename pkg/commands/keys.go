package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/runner/key"
)

func addKeys(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "print the key bindings of the browser",
		Example: `
bookshelf keys
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Out: cmd.OutOrStdout()}
			return k.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

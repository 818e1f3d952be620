package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/runner/ui"
)

func addBrowse(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ui"},
		Short:   "open the interactive catalog browser",
		Example: `
bookshelf browse
BOOKSHELF_THEME=night bookshelf browse
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runBrowse(cmd *cobra.Command) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	u := ui.UI{Store: e.store, Config: e.cfg, Dark: e.dark}
	return u.Do(cmd.Context())
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration in effect and the catalog.",
		Example: `
bookshelf info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			s := info.Info{
				Config: e.cfg,
				Store:  e.store,
				Dark:   e.dark,
				Out:    cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

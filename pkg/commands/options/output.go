package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	Output string
	ShowID bool
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "table",
		"Output format. One of 'table', 'json' or 'yaml'.")
}

func AddShowIDArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each book, author or genre.")
}

// Printer builds a printer for the selected format, writing to the
// command's output.
func (o *OutputOptions) Printer(cmd *cobra.Command) (*printers.Printer, error) {
	f, err := printers.ParseFormat(o.Output)
	if err != nil {
		return nil, err
	}
	return &printers.Printer{Out: cmd.OutOrStdout(), Format: f, ShowID: o.ShowID}, nil
}

// HandleError reports err in the selected format. Structured formats print
// the error as a document and exit cleanly.
func (o *OutputOptions) HandleError(p *printers.Printer, err error) error {
	if p == nil {
		return err
	}
	return p.Error(err)
}

package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/config"
	"tableflip.dev/bookshelf/pkg/theme"
)

// Set with -ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	verbose bool
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// env is what every command needs: resolved configuration and the catalog.
type env struct {
	cfg   config.Config
	store *catalog.Store
	dark  theme.Detector
}

func loadEnv() (*env, error) {
	cfg, err := config.Load(config.Options{})
	if err != nil {
		return nil, err
	}
	store, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded", "books", store.Len(), "page_size", cfg.PageSize, "theme", cfg.Theme)
	return &env{cfg: cfg, store: store, dark: theme.TerminalDetector}, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "bookshelf",
		Short: base.Wrap80("Browse, search and page through a book catalog from the terminal."),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger = newLogger(cmd.ErrOrStderr(), verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
				return runBrowse(cmd)
			}
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addBrowse(topLevel)
	addSearch(topLevel)
	addShow(topLevel)
	addLookups(topLevel)
	addKeys(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

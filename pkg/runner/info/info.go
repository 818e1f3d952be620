// Package info reports the resolved configuration and catalog size.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/config"
	"tableflip.dev/bookshelf/pkg/theme"
)

// Info prints where configuration came from and what it resolved to.
type Info struct {
	Config config.Config
	Store  *catalog.Store
	Dark   theme.Detector
	Out    io.Writer
}

// Do writes the report.
func (n *Info) Do(ctx context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}
	if n.Store == nil {
		return fmt.Errorf("failed to load catalog")
	}

	if override := os.Getenv("BOOKSHELF_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "BOOKSHELF_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "BOOKSHELF_CONFIG_PATH env var not set")
	}

	logFile := n.Config.LogFile
	if logFile == "" {
		logFile = "(discarded)"
	}
	resolved := theme.Resolve(n.Config.Theme, n.Dark)

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("page_size"), n.Config.PageSize)
	tbl.AddRow(bold.Sprint("theme"), fmt.Sprintf("%s (%s)", n.Config.Theme, resolved))
	tbl.AddRow(bold.Sprint("log_file"), logFile)
	tbl.AddRow(bold.Sprint("books"), n.Store.Len())
	tbl.AddRow(bold.Sprint("authors"), len(n.Store.AuthorOptions()))
	tbl.AddRow(bold.Sprint("genres"), len(n.Store.GenreOptions()))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)
	return nil
}

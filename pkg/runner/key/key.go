// Package key provides the CLI legend of the TUI key bindings.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	teaui "tableflip.dev/bookshelf/pkg/tui/app"
)

// Key prints the browse and overlay key bindings.
type Key struct {
	Out io.Writer
}

var overlayKeys = []key.Binding{
	key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab/shift+tab", "next/previous search field")),
	key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change author or genre")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit the form")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close without changes")),
}

// Do renders both tables.
func (k *Key) Do(ctx context.Context) error {
	w := k.Out
	if w == nil {
		w = color.Output
	}
	k.Table(w, "Browsing", teaui.DefaultKeyMap().FullHelp())
	_, _ = fmt.Fprintln(w, "")
	k.Table(w, "Overlays", overlayKeys)
	return nil
}

// Table renders one titled binding table.
func (k *Key) Table(w io.Writer, title string, bindings []key.Binding) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Action"))
	for _, b := range bindings {
		h := b.Help()
		tbl.AddRow(h.Key, h.Desc)
	}
	tbl.RightAlign(0)

	_, _ = color.New(color.Bold, color.Underline).Fprintln(w, title)
	_, _ = fmt.Fprintln(w, tbl)
}

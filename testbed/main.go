// Command testbed mounts a single bookshelf component in a resizable frame
// above a log of the messages it emits.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/theme"
	"tableflip.dev/bookshelf/pkg/tui/components/eventlog"
	"tableflip.dev/bookshelf/pkg/tui/events"
	tuitheme "tableflip.dev/bookshelf/pkg/tui/theme"
)

type options struct {
	full   bool
	width  int
	height int
	theme  string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run the TUI component harness",
	}

	rootCmd.PersistentFlags().BoolVar(&opts.full, "full", false, "use the full terminal window")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 80, "frame width when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 20, "frame height when not fullscreen")
	rootCmd.PersistentFlags().StringVar(&opts.theme, "theme", "day", "day, night or system")

	rootCmd.AddCommand(newGridCmd(&opts))
	rootCmd.AddCommand(newOverlayCmd(&opts, "search", "Render the search form"))
	rootCmd.AddCommand(newOverlayCmd(&opts, "settings", "Render the settings form"))
	rootCmd.AddCommand(newOverlayCmd(&opts, "detail", "Render the detail overlay for the first book"))
	rootCmd.AddCommand(newOverlayCmd(&opts, "help", "Render the help overlay"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// harness owns the frame and the event log. Component commands embed it
// and supply the framed content.
type harness struct {
	opts  options
	name  theme.Name
	theme tuitheme.Theme
	store *catalog.Store

	termWidth  int
	termHeight int

	events *eventlog.Model

	innerWidth  int
	innerHeight int
	eventHeight int
}

func newHarness(opts options) (harness, error) {
	store, err := catalog.Default()
	if err != nil {
		return harness{}, err
	}
	name := theme.Resolve(opts.theme, theme.TerminalDetector)
	th := tuitheme.New(theme.For(name))
	return harness{
		opts:   opts,
		name:   name,
		theme:  th,
		store:  store,
		events: eventlog.New(400, th),
	}, nil
}

// update records msg and tracks the terminal size.
func (h *harness) update(msg tea.Msg) tea.Cmd {
	h.record(msg)
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.termWidth, h.termHeight = msg.Width, msg.Height
		h.layout()
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
	}
	return nil
}

func (h *harness) layout() {
	if h.termWidth == 0 || h.termHeight == 0 {
		return
	}
	h.eventHeight = 0
	if avail := h.termHeight - minFrameHeight - frameGap; avail >= minEventHeight {
		h.eventHeight = min(clamp(h.termHeight/4, minEventHeight, maxEventHeight), avail)
	}
	space := max(minFrameHeight, h.termHeight-h.eventHeight-frameGap)

	width := clamp(h.opts.width, 20, h.termWidth-4)
	height := clamp(h.opts.height, minFrameHeight, space)
	if h.opts.full {
		width, height = h.termWidth, space
	}
	h.innerWidth = max(1, width-2)
	h.innerHeight = max(1, height-2)
	if h.eventHeight > 0 {
		h.events.SetSize(h.termWidth, h.eventHeight)
	}
}

func (h *harness) compose(content string) string {
	if h.termWidth == 0 || h.termHeight == 0 {
		return "Resizing…"
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(h.theme.Palette.Muted(0.4))).
		Width(h.innerWidth + 2).
		Height(h.innerHeight + 2).
		Render(lipgloss.NewStyle().
			Width(h.innerWidth).
			Height(h.innerHeight).
			Render(content))

	placed := lipgloss.Place(
		h.termWidth,
		max(1, h.termHeight-h.eventHeight-frameGap),
		lipgloss.Center,
		lipgloss.Top,
		frame,
	)
	if h.eventHeight == 0 {
		return placed
	}
	gap := strings.Repeat("\n", frameGap)
	return placed + "\n" + gap + h.events.View()
}

func (h *harness) record(msg tea.Msg) {
	h.events.Append(eventlog.Entry{
		Source:  source(msg),
		Summary: fmt.Sprintf("%T", msg),
		Detail:  describe(msg),
	})
}

func describe(msg tea.Msg) string {
	if d, ok := msg.(interface{ Describe() string }); ok {
		return d.Describe()
	}
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	default:
		return ""
	}
}

func source(msg tea.Msg) string {
	switch v := msg.(type) {
	case events.SearchSubmitMsg:
		return string(v.Component)
	case events.SearchCancelMsg:
		return string(v.Component)
	case events.SettingsSubmitMsg:
		return string(v.Component)
	case events.SettingsCancelMsg:
		return string(v.Component)
	case events.DetailCloseMsg:
		return string(v.Component)
	default:
		return "tea"
	}
}

func clamp(value, lo, hi int) int {
	if hi <= 0 {
		return lo
	}
	return min(max(value, lo), hi)
}

const (
	minFrameHeight = 12
	minEventHeight = 5
	maxEventHeight = 12
	frameGap       = 1
)

// Package eventlog renders a newest-first log of the messages a component
// emits. The testbed harness mounts it under the component being iterated on.
package eventlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	"github.com/charmbracelet/lipgloss/v2"

	tuitheme "tableflip.dev/bookshelf/pkg/tui/theme"
)

// Entry is one logged message.
type Entry struct {
	At      time.Time
	Source  string
	Summary string
	Detail  string
}

// Model keeps at most limit entries, newest first.
type Model struct {
	viewport viewport.Model
	entries  []Entry
	limit    int

	width  int
	height int

	theme tuitheme.Theme
	now   func() time.Time
}

// New builds an empty log capped at limit entries.
func New(limit int, th tuitheme.Theme) *Model {
	if limit <= 0 {
		limit = 200
	}
	return &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		limit:    limit,
		theme:    th,
		now:      time.Now,
	}
}

// Len reports how many entries are retained.
func (m *Model) Len() int { return len(m.entries) }

// Entries returns the retained entries, newest first.
func (m *Model) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Append logs e at the top.
func (m *Model) Append(e Entry) {
	if e.At.IsZero() {
		e.At = m.now()
	}
	if e.Source == "" {
		e.Source = "tea"
	}
	m.entries = append([]Entry{e}, m.entries...)
	if len(m.entries) > m.limit {
		m.entries = m.entries[:m.limit]
	}
	m.refresh()
	m.viewport.SetYOffset(0)
}

// SetTheme restyles the log.
func (m *Model) SetTheme(th tuitheme.Theme) {
	m.theme = th
	m.refresh()
}

// SetSize fits the framed log into width x height.
func (m *Model) SetSize(width, height int) {
	width = max(width, 4)
	height = max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width, m.height = width, height
	// border and the "Events" header
	m.viewport.SetWidth(max(1, width-2))
	m.viewport.SetHeight(max(1, height-3))
	m.refresh()
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Header.Title.Render("Events"),
		m.viewport.View(),
	)
	return m.theme.Preview.Frame.
		Padding(0).
		Width(m.width).
		Height(m.height).
		Render(body)
}

func (m *Model) refresh() {
	if len(m.entries) == 0 {
		m.viewport.SetContent(m.theme.Header.Hint.Render("No events yet"))
		return
	}
	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		lines = append(lines, m.line(e))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) line(e Entry) string {
	msg := e.Summary
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	return fmt.Sprintf("%s %s %s",
		m.theme.Footer.Remaining.Render(e.At.Format("15:04:05.000")),
		m.theme.Header.Hint.Render("["+e.Source+"]"),
		m.theme.Modal.Value.Render(msg),
	)
}

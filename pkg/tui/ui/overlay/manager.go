// Package overlay draws a foreground view on top of a background view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Placement controls overlay alignment and sizing. Positions follow Lip
// Gloss: 0 is left/top, 0.5 centre, 1 right/bottom.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Width      int
	Height     int
}

// Centered places the overlay in the middle of the screen.
func Centered() Placement {
	return Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}
}

// Compose overlays foreground atop a width x height background, keeping
// the background visible around the overlay.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := normalize(background, width, height)
	if strings.TrimSpace(foreground) == "" {
		return strings.Join(canvas, "\n")
	}

	fg := strings.Split(foreground, "\n")
	w := placement.Width
	if w <= 0 {
		w = lipgloss.Width(foreground)
	}
	w = min(w, width)
	h := placement.Height
	if h <= 0 {
		h = len(fg)
	}
	h = min(h, height)

	x := offset(width, w, placement.Horizontal, placement.MarginX)
	y := offset(height, h, placement.Vertical, placement.MarginY)

	for row := 0; row < h; row++ {
		line := ""
		if row < len(fg) {
			line = fg[row]
		}
		base := canvas[y+row]
		canvas[y+row] = ansi.Truncate(base, x, "") + fit(line, w) + ansi.TruncateLeft(base, x+w, "")
	}
	return strings.Join(canvas, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = fit(lines[i], width)
	}
	return lines
}

// fit pads or truncates s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

func offset(total, size int, pos lipgloss.Position, margin int) int {
	free := total - size
	if free <= 0 {
		return 0
	}
	off := int(float64(free)*float64(pos)+0.5) + margin
	if pos >= lipgloss.Right {
		off = free - margin
	}
	return max(0, min(off, free))
}

package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
)

func TestComposeCentersForeground(t *testing.T) {
	bg := strings.Repeat(".........\n", 5)
	out := Compose(bg, 9, 5, "ab\ncd", Centered())
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[1] != "...ab...." && lines[1] != "....ab..." {
		t.Fatalf("unexpected row 1 %q", lines[1])
	}
	if lines[0] != "........." || lines[4] != "........." {
		t.Fatalf("background rows changed: %q / %q", lines[0], lines[4])
	}
}

func TestComposeWithoutForegroundPadsBackground(t *testing.T) {
	out := Compose("hi", 4, 2, "", Centered())
	if out != "hi  \n    " {
		t.Fatalf("unexpected canvas %q", out)
	}
}

func TestComposeClampsOversizedForeground(t *testing.T) {
	out := Compose("", 3, 1, "abcdef", Placement{Horizontal: lipgloss.Left, Vertical: lipgloss.Top})
	if out != "abc" {
		t.Fatalf("expected truncated overlay, got %q", out)
	}
}

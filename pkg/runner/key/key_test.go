package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLegendListsBindings(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	k := Key{Out: &buf}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Browsing", "Overlays", "show more", "settings", "close without changes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("legend missing %q:\n%s", want, out)
		}
	}
}

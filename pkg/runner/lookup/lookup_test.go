package lookup

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/printers"
)

func TestListsAuthorsWithIDs(t *testing.T) {
	color.NoColor = true
	store, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	var buf bytes.Buffer
	l := Lookup{Store: store, Kind: Authors, Printer: &printers.Printer{Out: &buf, ShowID: true}}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Frank Herbert") || !strings.Contains(out, "8e2b4f1a") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestUnknownKind(t *testing.T) {
	store, _ := catalog.Default()
	l := Lookup{Store: store, Kind: "publishers", Printer: &printers.Printer{Out: &bytes.Buffer{}}}
	if err := l.Do(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

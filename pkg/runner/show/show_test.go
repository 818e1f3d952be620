package show

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/printers"
)

func TestShowKnownBook(t *testing.T) {
	color.NoColor = true
	store, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	id := store.Books()[0].ID
	var buf bytes.Buffer
	s := Show{Store: store, ID: id, Printer: &printers.Printer{Out: &buf, Format: printers.YAML}}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), "title: Dune") || !strings.Contains(buf.String(), "description:") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestShowUnknownBook(t *testing.T) {
	store, _ := catalog.Default()
	s := Show{Store: store, ID: "missing", Printer: &printers.Printer{Out: &bytes.Buffer{}}}
	if err := s.Do(context.Background()); !errors.Is(err, catalog.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

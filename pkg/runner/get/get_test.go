package get

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/printers"
	"tableflip.dev/bookshelf/pkg/search"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, g *Get) printers.ResultView {
	t.Helper()
	store, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	var buf bytes.Buffer
	g.Store = store
	g.Printer = &printers.Printer{Out: &buf, Format: printers.JSON}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var out printers.ResultView
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestPagesThroughMatches(t *testing.T) {
	first := run(t, &Get{Criteria: search.All(), Page: 1, PageSize: 10})
	if first.Total != 24 || len(first.Books) != 10 || first.Remaining != 14 {
		t.Fatalf("unexpected first page: total=%d books=%d remaining=%d", first.Total, len(first.Books), first.Remaining)
	}
	last := run(t, &Get{Criteria: search.All(), Page: 3, PageSize: 10})
	if len(last.Books) != 4 || last.Remaining != 0 {
		t.Fatalf("unexpected last page: books=%d remaining=%d", len(last.Books), last.Remaining)
	}
	past := run(t, &Get{Criteria: search.All(), Page: 9, PageSize: 10})
	if len(past.Books) != 0 {
		t.Fatalf("expected empty page past the end")
	}
}

func TestHugePageIsEmpty(t *testing.T) {
	for _, g := range []*Get{
		{Criteria: search.All(), Page: math.MaxInt, PageSize: 36},
		{Criteria: search.All(), Page: 1 << 62, PageSize: math.MaxInt},
	} {
		out := run(t, g)
		if len(out.Books) != 0 || out.Remaining != 0 || out.Total != 24 {
			t.Fatalf("page %d size %d: books=%d remaining=%d total=%d",
				g.Page, g.PageSize, len(out.Books), out.Remaining, out.Total)
		}
	}
}

func TestFiltersByTitle(t *testing.T) {
	out := run(t, &Get{Criteria: search.Criteria{Title: "dune", Author: search.Any, Genre: search.Any}, Page: 1})
	if out.Total != 3 || out.PageSize != catalog.DefaultPageSize {
		t.Fatalf("unexpected result %#v", out)
	}
	for _, b := range out.Books {
		if !strings.Contains(strings.ToLower(b.Title), "dune") {
			t.Fatalf("unexpected match %q", b.Title)
		}
	}
}

func TestRejectsBadInput(t *testing.T) {
	store, _ := catalog.Default()
	p := &printers.Printer{Out: &bytes.Buffer{}}
	if err := (&Get{Store: store, Printer: p, Criteria: search.All(), Page: 0}).Do(context.Background()); err == nil {
		t.Fatalf("expected page error")
	}
	if err := (&Get{Store: store, Printer: p, Criteria: search.Criteria{}, Page: 1}).Do(context.Background()); err == nil {
		t.Fatalf("expected criteria error")
	}
	if err := (&Get{Printer: p, Page: 1}).Do(context.Background()); err == nil {
		t.Fatalf("expected missing catalog error")
	}
}

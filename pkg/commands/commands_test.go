package commands

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BOOKSHELF_PAGE_SIZE", "")
	t.Setenv("BOOKSHELF_THEME", "")

	var out, errOut bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchJSON(t *testing.T) {
	out, err := execute(t, "search", "--author", "Frank Herbert", "-o", "json")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	var got struct {
		Total int `json:"total"`
		Books []struct {
			Author string `json:"author"`
		} `json:"books"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Total != 3 || len(got.Books) != 3 {
		t.Fatalf("expected 3 books, got %+v", got)
	}
	for _, b := range got.Books {
		if b.Author != "Frank Herbert" {
			t.Fatalf("unexpected author %q", b.Author)
		}
	}
}

func TestSearchTitleArgs(t *testing.T) {
	out, err := execute(t, "search", "dune")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "Dune Messiah") {
		t.Fatalf("expected Dune Messiah in:\n%s", out)
	}
}

func TestSearchTitleTwice(t *testing.T) {
	if _, err := execute(t, "search", "dune", "--title", "dune"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestSearchUnknownAuthor(t *testing.T) {
	if _, err := execute(t, "search", "--author", "Nobody At All"); err == nil {
		t.Fatal("expected an error for an unknown author")
	}
}

func TestShowMissing(t *testing.T) {
	if _, err := execute(t, "show", "no-such-book"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLookups(t *testing.T) {
	out, err := execute(t, "authors")
	if err != nil {
		t.Fatalf("authors: %v", err)
	}
	if !strings.Contains(out, "Frank Herbert") {
		t.Fatalf("expected Frank Herbert in:\n%s", out)
	}
	if _, err := execute(t, "genres", "-o", "yaml"); err != nil {
		t.Fatalf("genres: %v", err)
	}
}

func TestKeys(t *testing.T) {
	out, err := execute(t, "keys")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if !strings.Contains(out, "Browsing") {
		t.Fatalf("expected key table, got:\n%s", out)
	}
}

func TestBookCompletions(t *testing.T) {
	all := bookCompletions("")
	if len(all) != 24 {
		t.Fatalf("expected 24 completions, got %d", len(all))
	}
	id := strings.SplitN(all[0], "\t", 2)[0]
	if got := bookCompletions(id); len(got) != 1 {
		t.Fatalf("expected a single match for %q, got %v", id, got)
	}
}

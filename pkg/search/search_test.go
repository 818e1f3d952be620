package search

import (
	"testing"

	"tableflip.dev/bookshelf/pkg/book"
)

func sampleBooks() []book.Book {
	return []book.Book{
		{ID: "1", Title: "Dune Messiah", Author: "herbert", Genres: []string{"scifi"}},
		{ID: "2", Title: "Foundation", Author: "asimov", Genres: []string{"scifi", "classic"}},
		{ID: "3", Title: "Emma", Author: "austen", Genres: []string{"romance", "classic"}},
		{ID: "4", Title: "Children of Dune", Author: "herbert", Genres: []string{"scifi"}},
		{ID: "5", Title: "Persuasion", Author: "austen", Genres: []string{"romance"}},
	}
}

func ids(books []book.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterAllReturnsCatalogInOrder(t *testing.T) {
	books := sampleBooks()
	got := Filter(books, Criteria{Title: "", Author: Any, Genre: Any})
	if !equalIDs(ids(got), ids(books)) {
		t.Fatalf("expected full catalog in order, got %v", ids(got))
	}
}

func TestFilterTitleIsCaseInsensitiveSubstring(t *testing.T) {
	books := []book.Book{
		{ID: "dm", Title: "Dune Messiah", Author: "a"},
		{ID: "f", Title: "Foundation", Author: "b"},
	}
	got := Filter(books, Criteria{Title: "dune", Author: Any, Genre: Any})
	if len(got) != 1 || got[0].Title != "Dune Messiah" {
		t.Fatalf("expected only Dune Messiah, got %v", ids(got))
	}
}

func TestFilterTitleIsTrimmed(t *testing.T) {
	got := Filter(sampleBooks(), Criteria{Title: "   ", Author: Any, Genre: Any})
	if len(got) != len(sampleBooks()) {
		t.Fatalf("blank title should match all, got %d", len(got))
	}
	got = Filter(sampleBooks(), Criteria{Title: "  DUNE ", Author: Any, Genre: Any})
	if !equalIDs(ids(got), []string{"1", "4"}) {
		t.Fatalf("expected padded title to match, got %v", ids(got))
	}
}

func TestFilterAuthorAndGenreCombine(t *testing.T) {
	got := Filter(sampleBooks(), Criteria{Author: "austen", Genre: "classic"})
	if !equalIDs(ids(got), []string{"3"}) {
		t.Fatalf("expected only Emma, got %v", ids(got))
	}
	got = Filter(sampleBooks(), Criteria{Author: Any, Genre: "scifi"})
	if !equalIDs(ids(got), []string{"1", "2", "4"}) {
		t.Fatalf("expected scifi books in order, got %v", ids(got))
	}
}

func TestFilterAgreesWithMatch(t *testing.T) {
	books := sampleBooks()
	criteria := []Criteria{
		All(),
		{Title: "on", Author: Any, Genre: Any},
		{Title: "", Author: "herbert", Genre: Any},
		{Title: "e", Author: Any, Genre: "romance"},
		{Title: "zzz", Author: Any, Genre: Any},
		{Title: "", Author: "nobody", Genre: "scifi"},
	}
	for _, c := range criteria {
		got := map[string]bool{}
		for _, b := range Filter(books, c) {
			got[b.ID] = true
		}
		for _, b := range books {
			if Match(b, c) != got[b.ID] {
				t.Fatalf("criteria %s: Match(%s)=%t but filtered=%t", c, b.ID, Match(b, c), got[b.ID])
			}
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	books := sampleBooks()
	_ = Filter(books, Criteria{Author: "austen", Genre: Any})
	if !equalIDs(ids(books), []string{"1", "2", "3", "4", "5"}) {
		t.Fatalf("input reordered: %v", ids(books))
	}
}

func TestCriteriaFromFormTreatsMissingAsAny(t *testing.T) {
	c := CriteriaFromForm(map[string]string{"title": "dune"})
	if c.Author != Any || c.Genre != Any || c.Title != "dune" {
		t.Fatalf("unexpected criteria %+v", c)
	}
	c = CriteriaFromForm(nil)
	if !c.IsAll() {
		t.Fatalf("nil form should match all, got %+v", c)
	}
	c = CriteriaFromForm(map[string]string{"author": " ", "genre": "scifi"})
	if c.Author != Any || c.Genre != "scifi" {
		t.Fatalf("unexpected criteria %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateRejectsZeroCriteria(t *testing.T) {
	if err := (Criteria{}).Validate(); err == nil {
		t.Fatalf("expected zero criteria to be rejected")
	}
}

func TestFormRoundTrip(t *testing.T) {
	c := Criteria{Title: "x", Author: "a", Genre: "g"}
	if got := CriteriaFromForm(c.Form()); got != c {
		t.Fatalf("expected %+v, got %+v", c, got)
	}
}

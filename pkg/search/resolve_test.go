package search

import (
	"errors"
	"strings"
	"testing"
)

type fakeResolver map[string]string

func (f fakeResolver) FindAuthor(v string) (string, bool) {
	id, ok := f["author:"+strings.ToLower(v)]
	return id, ok
}

func (f fakeResolver) FindGenre(v string) (string, bool) {
	id, ok := f["genre:"+strings.ToLower(v)]
	return id, ok
}

func TestResolve(t *testing.T) {
	r := fakeResolver{"author:ursula le guin": "a2", "genre:fantasy": "g-fantasy"}

	c, err := Resolve(r, "earth", "Ursula Le Guin", "fantasy")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c.Title != "earth" || c.Author != "a2" || c.Genre != "g-fantasy" {
		t.Fatalf("unexpected criteria %+v", c)
	}

	c, err = Resolve(r, "", "", "ANY")
	if err != nil || !c.IsAll() {
		t.Fatalf("expected all criteria, got %+v, %v", c, err)
	}

	if _, err := Resolve(r, "", "nobody", ""); !errors.Is(err, ErrUnknownAuthor) {
		t.Fatalf("expected ErrUnknownAuthor, got %v", err)
	}
	if _, err := Resolve(r, "", "", "poetry"); !errors.Is(err, ErrUnknownGenre) {
		t.Fatalf("expected ErrUnknownGenre, got %v", err)
	}
}

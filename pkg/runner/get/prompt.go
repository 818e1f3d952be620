package get

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/search"
)

// Prompt asks for each search field in turn, starting from current.
func Prompt(store *catalog.Store, current search.Criteria) (search.Criteria, error) {
	titlePrompt := promptui.Prompt{
		Label:   "Title contains",
		Default: current.Title,
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }}: ",
			Valid:   "{{ . | green }}: ",
			Success: "{{ . | bold }}: ",
		},
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return current, fmt.Errorf("title: %w", err)
	}

	author, err := choose("Author", "All Authors", store.AuthorOptions(), current.Author)
	if err != nil {
		return current, err
	}
	genre, err := choose("Genre", "All Genres", store.GenreOptions(), current.Genre)
	if err != nil {
		return current, err
	}
	return search.Criteria{Title: title, Author: author, Genre: genre}, nil
}

func choose(label, anyLabel string, opts []catalog.Option, current string) (string, error) {
	all := append([]catalog.Option{{Value: search.Any, Label: anyLabel}}, opts...)
	labels := make([]string, len(all))
	cursor := 0
	for i, o := range all {
		labels[i] = o.Label
		if o.Value == current {
			cursor = i
		}
	}
	sel := promptui.Select{
		Label:     label,
		Items:     labels,
		CursorPos: cursor,
		Size:      10,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(labels[index]), strings.ToLower(strings.TrimSpace(input)))
		},
	}
	idx, _, err := sel.Run()
	if err != nil {
		return "", fmt.Errorf("%s selection: %w", label, err)
	}
	return all[idx].Value, nil
}

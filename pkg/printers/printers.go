// Package printers writes catalog results for the command line as coloured
// tables, JSON or YAML.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"
	"gopkg.in/yaml.v3"

	"tableflip.dev/bookshelf/pkg/book"
	"tableflip.dev/bookshelf/pkg/catalog"
)

// Format selects how results are written.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// ParseFormat validates an --output value. Empty means Table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", Table:
		return Table, nil
	case JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected table, json or yaml)", s)
	}
}

// BookView is the printed form of a book with ids resolved to names.
type BookView struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Author      string   `json:"author" yaml:"author"`
	AuthorID    string   `json:"authorId" yaml:"authorId"`
	Published   string   `json:"published" yaml:"published"`
	Year        int      `json:"year" yaml:"year"`
	Genres      []string `json:"genres" yaml:"genres"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// ResultView is the printed form of one page of search results.
type ResultView struct {
	Criteria  map[string]string `json:"criteria" yaml:"criteria"`
	Page      int               `json:"page" yaml:"page"`
	PageSize  int               `json:"pageSize" yaml:"pageSize"`
	Total     int               `json:"total" yaml:"total"`
	Remaining int               `json:"remaining" yaml:"remaining"`
	Books     []BookView        `json:"books" yaml:"books"`
}

// NewBookView resolves author and genre ids through the store.
func NewBookView(store *catalog.Store, b book.Book, full bool) BookView {
	v := BookView{
		ID:        b.ID,
		Title:     b.Title,
		Author:    store.AuthorName(b.Author),
		AuthorID:  b.Author,
		Published: b.Published.String(),
		Year:      b.Year(),
		Genres:    store.GenreNames(b),
	}
	if full {
		v.Image = b.Image
		v.Description = b.Description
	}
	return v
}

// Printer writes results to Out.
type Printer struct {
	Out    io.Writer
	Format Format
	ShowID bool
}

func (p *Printer) out() io.Writer {
	if p.Out == nil {
		return color.Output
	}
	return p.Out
}

// Results prints one page of search results.
func (p *Printer) Results(r ResultView) error {
	switch p.Format {
	case JSON:
		return p.json(r)
	case YAML:
		return p.yaml(r)
	}
	w := p.out()
	title := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)

	_, _ = title.Fprint(w, "Books")
	_, _ = faint.Fprintf(w, " - %d of %d\n", len(r.Books), r.Total)
	if len(r.Books) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(w, " No books match your search.")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	bold := color.New(color.Bold)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)
	header := []interface{}{bold.Sprint("Title"), bold.Sprint("Author"), bold.Sprint("Year"), bold.Sprint("Genres")}
	if p.ShowID {
		header = append([]interface{}{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)
	for _, b := range r.Books {
		row := []interface{}{b.Title, b.Author, b.Year, strings.Join(b.Genres, ", ")}
		if p.ShowID {
			row = append([]interface{}{id.Sprint(b.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(w, tbl)

	if r.Remaining > 0 {
		_, _ = faint.Fprintf(w, "%d more, use --page %d\n", r.Remaining, r.Page+1)
	}
	return nil
}

// Book prints every field of one book.
func (p *Printer) Book(v BookView) error {
	switch p.Format {
	case JSON:
		return p.json(v)
	case YAML:
		return p.yaml(v)
	}
	w := p.out()
	_, _ = color.New(color.Bold, color.Underline).Fprintln(w, v.Title)
	_, _ = color.New(color.Faint).Fprintf(w, "%s (%d)\n\n", v.Author, v.Year)

	tbl := uitable.New()
	tbl.Separator = "  "
	key := color.New(color.Bold)
	tbl.AddRow(key.Sprint("ID"), v.ID)
	tbl.AddRow(key.Sprint("Published"), v.Published)
	tbl.AddRow(key.Sprint("Genres"), strings.Join(v.Genres, ", "))
	if v.Image != "" {
		tbl.AddRow(key.Sprint("Image"), v.Image)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)

	if v.Description != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", wordwrap.String(v.Description, 80))
	}
	return nil
}

// Options prints a labelled id list such as authors or genres.
func (p *Printer) Options(title string, opts []catalog.Option) error {
	switch p.Format {
	case JSON:
		return p.json(opts)
	case YAML:
		return p.yaml(opts)
	}
	w := p.out()
	_, _ = color.New(color.Bold, color.Underline).Fprintln(w, title)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, o := range opts {
		if p.ShowID {
			tbl.AddRow(color.New(color.FgHiYellow, color.Faint).Sprint(o.Value), o.Label)
		} else {
			tbl.AddRow(o.Label)
		}
	}
	_, _ = fmt.Fprintln(w, tbl)
	return nil
}

// Error prints err in the selected format. Tables leave it to the caller.
func (p *Printer) Error(err error) error {
	if err == nil || p.Format == Table {
		return err
	}
	out := map[string]string{"error": err.Error()}
	if p.Format == YAML {
		return p.yaml(out)
	}
	return p.json(out)
}

func (p *Printer) json(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.out(), string(b))
	return err
}

func (p *Printer) yaml(v interface{}) error {
	enc := yaml.NewEncoder(p.out())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

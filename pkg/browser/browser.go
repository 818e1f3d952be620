// Package browser is the interaction controller: it owns the current
// matches, the revealed pages, the open overlay and the theme, and pushes
// every change through a Surface.
package browser

import (
	"io"
	"log/slog"

	"tableflip.dev/bookshelf/pkg/book"
	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/paging"
	"tableflip.dev/bookshelf/pkg/search"
	"tableflip.dev/bookshelf/pkg/theme"
)

// FieldTheme is the settings form field holding "day" or "night".
const FieldTheme = "theme"

// Overlay identifies which overlay is open. At most one is open at a time:
// opening an overlay replaces whichever was showing.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlaySearch
	OverlaySettings
	OverlayDetail
)

func (o Overlay) String() string {
	switch o {
	case OverlaySearch:
		return "search"
	case OverlaySettings:
		return "settings"
	case OverlayDetail:
		return "detail"
	default:
		return "none"
	}
}

// Detail is the content of the detail overlay.
type Detail struct {
	BookID      string
	Image       string
	Title       string
	Subtitle    string
	Description string
}

// Surface is the rendering boundary the controller drives.
type Surface interface {
	// ClearItems removes every rendered item.
	ClearItems()
	// RenderItems appends items after those already rendered.
	RenderItems(items []book.Book)
	SetNoResults(show bool)
	SetShowMore(remaining int, enabled bool)
	ScrollToTop()
	FocusSearchTitle()
	ApplyTheme(p theme.Palette)
	SetOverlay(o Overlay)
	ShowDetail(d Detail)
}

// Options configure a Controller.
type Options struct {
	PageSize int
	Logger   *slog.Logger
}

// Controller holds all mutable browsing state. It is not safe for
// concurrent use; every handler runs to completion on the caller's
// goroutine.
type Controller struct {
	store   *catalog.Store
	surface Surface
	log     *slog.Logger

	matches  []book.Book
	page     paging.State
	criteria search.Criteria
	overlay  Overlay
	theme    theme.Name
	active   *book.Book
}

// New builds a controller over store. Call Start before handling events.
func New(store *catalog.Store, surface Surface, opts Options) *Controller {
	size := opts.PageSize
	if size <= 0 {
		size = catalog.DefaultPageSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		store:    store,
		surface:  surface,
		log:      logger.With("component", "browser"),
		matches:  store.Books(),
		page:     paging.New(size),
		criteria: search.All(),
		theme:    theme.Day,
	}
}

// Start renders the initial state: every overlay closed, the whole catalog
// as matches, page 1 and the preferred theme.
func (c *Controller) Start(preferred theme.Name) {
	c.matches = c.store.Books()
	c.page.Reset()
	c.overlay = OverlayNone
	c.active = nil
	c.surface.SetOverlay(OverlayNone)
	c.surface.ClearItems()
	c.surface.SetNoResults(len(c.matches) == 0)
	c.surface.RenderItems(c.page.Current(c.matches))
	c.updateShowMore()
	c.applyTheme(preferred)
	c.log.Debug("started", "books", len(c.matches), "page_size", c.page.Size, "theme", c.theme)
}

// OpenSearch shows the search overlay and focuses its title field.
func (c *Controller) OpenSearch() {
	c.setOverlay(OverlaySearch)
	c.surface.FocusSearchTitle()
}

// CancelSearch closes the search overlay without touching the matches.
func (c *Controller) CancelSearch() {
	c.closeOverlay(OverlaySearch)
}

// SubmitSearch replaces the matches with the books selected by form and
// renders the first page of them.
func (c *Controller) SubmitSearch(form map[string]string) {
	criteria := search.CriteriaFromForm(form)
	c.criteria = criteria
	c.matches = search.Filter(c.store.Books(), criteria)
	c.page.Reset()

	c.surface.SetNoResults(len(c.matches) == 0)
	c.surface.ClearItems()
	c.surface.RenderItems(c.page.Current(c.matches))
	c.updateShowMore()
	c.surface.ScrollToTop()
	c.closeOverlay(OverlaySearch)
	c.log.Debug("search", "criteria", criteria.String(), "matches", len(c.matches))
}

// OpenSettings shows the settings overlay.
func (c *Controller) OpenSettings() {
	c.setOverlay(OverlaySettings)
}

// CancelSettings closes the settings overlay without changing the theme.
func (c *Controller) CancelSettings() {
	c.closeOverlay(OverlaySettings)
}

// SubmitSettings applies the submitted theme and closes the overlay.
func (c *Controller) SubmitSettings(form map[string]string) {
	c.applyTheme(theme.Parse(form[FieldTheme]))
	c.closeOverlay(OverlaySettings)
}

// ShowMore reveals and appends the next page. It does nothing when every
// match is already shown.
func (c *Controller) ShowMore() {
	revealed, ok := c.page.ShowMore(c.matches)
	if !ok {
		c.log.Debug("show more ignored", "page", c.page.Page)
		return
	}
	c.surface.RenderItems(revealed)
	c.updateShowMore()
	c.log.Debug("show more", "page", c.page.Page, "revealed", len(revealed))
}

// ClickItem opens the detail overlay for the book with id. The id is
// resolved against the whole catalog, so it works for any rendered item
// regardless of the current filter. Unknown ids are ignored.
func (c *Controller) ClickItem(id string) {
	b, ok := c.store.Lookup(id)
	if !ok {
		c.log.Debug("click ignored", "id", id)
		return
	}
	c.active = &b
	c.surface.ShowDetail(Detail{
		BookID:      b.ID,
		Image:       b.Image,
		Title:       b.Title,
		Subtitle:    b.Subtitle(c.store.AuthorName(b.Author)),
		Description: b.Description,
	})
	c.setOverlay(OverlayDetail)
}

// CloseDetail hides the detail overlay.
func (c *Controller) CloseDetail() {
	c.closeOverlay(OverlayDetail)
}

// Matches returns the current matches.
func (c *Controller) Matches() []book.Book {
	out := make([]book.Book, len(c.matches))
	copy(out, c.matches)
	return out
}

// Page returns the number of revealed pages.
func (c *Controller) Page() int { return c.page.Page }

// PageSize returns the fixed page size.
func (c *Controller) PageSize() int { return c.page.Size }

// Remaining returns how many matches are not yet revealed.
func (c *Controller) Remaining() int { return c.page.Remaining(c.matches) }

// Visible returns every revealed match.
func (c *Controller) Visible() []book.Book { return c.page.Visible(c.matches) }

// Criteria returns the last submitted search.
func (c *Controller) Criteria() search.Criteria { return c.criteria }

// Overlay returns the open overlay.
func (c *Controller) Overlay() Overlay { return c.overlay }

func (c *Controller) SearchOpen() bool   { return c.overlay == OverlaySearch }
func (c *Controller) SettingsOpen() bool { return c.overlay == OverlaySettings }
func (c *Controller) DetailOpen() bool   { return c.overlay == OverlayDetail }

// Active returns the book in the detail overlay, if any.
func (c *Controller) Active() (book.Book, bool) {
	if c.active == nil {
		return book.Book{}, false
	}
	return *c.active, true
}

// Theme returns the applied theme.
func (c *Controller) Theme() theme.Name { return c.theme }

// Store exposes the catalog for lookups such as author names.
func (c *Controller) Store() *catalog.Store { return c.store }

func (c *Controller) updateShowMore() {
	remaining := c.page.Remaining(c.matches)
	c.surface.SetShowMore(remaining, remaining > 0)
}

func (c *Controller) applyTheme(n theme.Name) {
	if n != theme.Night {
		n = theme.Day
	}
	c.theme = n
	c.surface.ApplyTheme(theme.For(n))
	c.log.Debug("theme", "name", n)
}

func (c *Controller) setOverlay(o Overlay) {
	if o != OverlayDetail {
		c.active = nil
	}
	c.overlay = o
	c.surface.SetOverlay(o)
}

// closeOverlay closes o if it is the open overlay.
func (c *Controller) closeOverlay(o Overlay) {
	if c.overlay != o {
		return
	}
	c.setOverlay(OverlayNone)
}

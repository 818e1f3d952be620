package teaui

import (
	"tableflip.dev/bookshelf/pkg/book"
	"tableflip.dev/bookshelf/pkg/browser"
	"tableflip.dev/bookshelf/pkg/theme"
	"tableflip.dev/bookshelf/pkg/tui/components/bookpreview"
	"tableflip.dev/bookshelf/pkg/tui/components/detailpane"
	"tableflip.dev/bookshelf/pkg/tui/components/searchform"
	"tableflip.dev/bookshelf/pkg/tui/components/settingsform"
	tuitheme "tableflip.dev/bookshelf/pkg/tui/theme"
	"tableflip.dev/bookshelf/pkg/tui/ui"
)

// ClearItems implements browser.Surface.
func (m *Model) ClearItems() {
	m.items = nil
	m.cursor = 0
	m.offset = 0
}

// RenderItems appends one preview card per book. Cards keep only the book
// id; the detail is resolved through the catalog on selection.
func (m *Model) RenderItems(books []book.Book) {
	for _, b := range books {
		m.items = append(m.items, bookpreview.FromBook(b, authorFor(m.store, b)))
	}
}

// SetNoResults implements browser.Surface.
func (m *Model) SetNoResults(visible bool) { m.noResults = visible }

// SetShowMore implements browser.Surface.
func (m *Model) SetShowMore(remaining int, enabled bool) {
	m.moreRemaining = remaining
	m.moreEnabled = enabled
}

// ScrollToTop implements browser.Surface.
func (m *Model) ScrollToTop() {
	m.cursor = 0
	m.offset = 0
}

// FocusSearchTitle focuses the title input of the open search overlay.
func (m *Model) FocusSearchTitle() {
	if f, ok := m.overlay.(*searchform.Model); ok {
		m.pending = append(m.pending, f.Init())
	}
}

// ApplyTheme restyles the whole surface.
func (m *Model) ApplyTheme(p theme.Palette) {
	m.theme = tuitheme.New(p)
}

// ShowDetail stores the detail for the overlay opened next.
func (m *Model) ShowDetail(d browser.Detail) { m.detail = d }

// SetOverlay mounts the component for the controller's overlay state.
func (m *Model) SetOverlay(o browser.Overlay) {
	var next ui.Overlay
	switch o {
	case browser.OverlaySearch:
		next = searchform.New(m.store, m.ctrl.Criteria(), m.theme)
	case browser.OverlaySettings:
		next = settingsform.New(m.ctrl.Theme(), m.theme)
	case browser.OverlayDetail:
		next = detailpane.New(m.detail, m.theme)
	}
	m.overlay = next
	if next == nil {
		return
	}
	next.SetSize(m.width, m.height)
	if o != browser.OverlaySearch {
		if cmd := next.Init(); cmd != nil {
			m.pending = append(m.pending, cmd)
		}
	}
}

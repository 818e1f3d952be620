package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	scheme "tableflip.dev/bookshelf/pkg/theme"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI. Every colour is
// derived from the applied palette so that switching day/night restyles the
// whole surface.
type Theme struct {
	Palette scheme.Palette

	Base    lipgloss.Style
	Header  HeaderTheme
	Preview PreviewTheme
	Footer  FooterTheme
	Modal   ModalTheme
	Detail  DetailTheme
}

// HeaderTheme styles the title bar.
type HeaderTheme struct {
	Title lipgloss.Style
	Hint  lipgloss.Style
}

// PreviewTheme styles a single book preview card.
type PreviewTheme struct {
	Frame    lipgloss.Style
	Selected lipgloss.Style
	Image    lipgloss.Style
	Title    lipgloss.Style
	Author   lipgloss.Style
}

// FooterTheme groups styles used by the show-more bar and messages.
type FooterTheme struct {
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Remaining      lipgloss.Style
	Message        lipgloss.Style
	Help           lipgloss.Style
}

// ModalTheme styles centered form overlays (search, settings).
type ModalTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Value    lipgloss.Style
	Help     lipgloss.Style
	Selected lipgloss.Style
}

// DetailTheme styles the book detail overlay.
type DetailTheme struct {
	Frame       lipgloss.Style
	Image       lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Description lipgloss.Style
	Help        lipgloss.Style
}

const accent = "#0096ff"

// New returns the styles for a palette.
func New(p scheme.Palette) Theme {
	fg := lipgloss.Color(p.Dark.Hex())
	bg := lipgloss.Color(p.Light.Hex())
	strong := lipgloss.Color(p.Muted(0.8))
	faint := lipgloss.Color(p.Muted(0.4))
	rule := lipgloss.Color(p.Muted(0.15))
	blue := lipgloss.Color(accent)

	base := lipgloss.NewStyle().Foreground(fg).Background(bg)
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(rule).
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(faint).
		Foreground(fg).
		Background(bg).
		Padding(1, 2)

	return Theme{
		Palette: p,
		Base:    base,
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Bold(true).Foreground(fg),
			Hint:  lipgloss.NewStyle().Foreground(faint),
		},
		Preview: PreviewTheme{
			Frame:    frame,
			Selected: frame.BorderForeground(blue),
			Image:    lipgloss.NewStyle().Foreground(faint).Italic(true),
			Title:    lipgloss.NewStyle().Bold(true).Foreground(strong),
			Author:   lipgloss.NewStyle().Foreground(faint),
		},
		Footer: FooterTheme{
			Button:         lipgloss.NewStyle().Bold(true).Foreground(blue),
			ButtonDisabled: lipgloss.NewStyle().Foreground(faint).Faint(true),
			Remaining:      lipgloss.NewStyle().Foreground(faint),
			Message:        lipgloss.NewStyle().Bold(true).Foreground(strong),
			Help:           lipgloss.NewStyle().Foreground(faint),
		},
		Modal: ModalTheme{
			Frame:    modal,
			Title:    lipgloss.NewStyle().Bold(true).Foreground(fg),
			Label:    lipgloss.NewStyle().Foreground(faint),
			Focused:  lipgloss.NewStyle().Bold(true).Foreground(blue),
			Value:    lipgloss.NewStyle().Foreground(fg),
			Help:     lipgloss.NewStyle().Foreground(faint),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(blue),
		},
		Detail: DetailTheme{
			Frame:       modal,
			Image:       lipgloss.NewStyle().Foreground(faint).Italic(true),
			Title:       lipgloss.NewStyle().Bold(true).Foreground(fg),
			Subtitle:    lipgloss.NewStyle().Foreground(faint),
			Description: lipgloss.NewStyle().Foreground(strong),
			Help:        lipgloss.NewStyle().Foreground(faint),
		},
	}
}

// Default returns the day styles.
func Default() Theme {
	return New(scheme.For(scheme.Day))
}

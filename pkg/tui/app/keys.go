package teaui

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap lists the bindings of the book list.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Open     key.Binding
	More     key.Binding
	Search   key.Binding
	Settings key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous row")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next row")),
		Left:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous book")),
		Right:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next book")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdown", "page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first book")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last loaded book")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		More:     key.NewBinding(key.WithKeys("m", "space"), key.WithHelp("m", "show more")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Settings: key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Settings, k.More, k.Open, k.Help, k.Quit}
}

// FullHelp returns every binding in display order.
func (k KeyMap) FullHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown, k.Top, k.Bottom,
		k.Open, k.More, k.Search, k.Settings, k.Help, k.Quit,
	}
}
